package game

import "log"

// Registry 保证协调器在进程内只构造一次
//
// 第一次 Provide 创建实例；之后的调用直接返回已有实例，
// 传入的配置被丢弃而不是合并。
type Registry struct {
	coordinator *Coordinator
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{}
}

// Provide 返回唯一的协调器实例
// created 表示本次调用是否新建了实例
func (r *Registry) Provide(cfg CoordinatorConfig) (coordinator *Coordinator, created bool) {
	if r.coordinator != nil {
		log.Printf("[Registry] Coordinator already exists, discarding duplicate construction")
		return r.coordinator, false
	}
	r.coordinator = NewCoordinator(cfg)
	return r.coordinator, true
}

// Coordinator 返回已创建的协调器，尚未创建时返回 nil
func (r *Registry) Coordinator() *Coordinator {
	return r.coordinator
}
