package game

import "errors"

// 错误分类
//
// 调用方通过 errors.Is 判断错误类别，具体上下文由 fmt.Errorf("...: %w") 包装
var (
	// ErrMissingCollaborator 调用时所需的协作者（协调器、场景加载器等）不存在
	ErrMissingCollaborator = errors.New("missing collaborator")

	// ErrInvalidTransition 当前状态下不允许的状态切换（如未注册暂停界面时切换暂停）
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrResourceNotFound 资源（音频片段、场景、界面引用）不存在
	ErrResourceNotFound = errors.New("resource not found")
)
