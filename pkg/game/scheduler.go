package game

// ScheduledTask 延迟任务句柄，可用于取消尚未触发的任务
type ScheduledTask struct {
	remaining float64
	fn        func()
	cancelled bool
	fired     bool
}

// Cancel 取消任务
// 返回 true 表示任务此前尚未触发且已被取消
func (t *ScheduledTask) Cancel() bool {
	if t == nil || t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Pending 任务是否仍在等待触发
func (t *ScheduledTask) Pending() bool {
	return t != nil && !t.fired && !t.cancelled
}

// Remaining 距离触发的剩余时间（秒）
func (t *ScheduledTask) Remaining() float64 {
	if !t.Pending() {
		return 0
	}
	return t.remaining
}

// Scheduler 单线程延迟任务调度器
//
// 由应用主循环以真实时间（不受暂停影响）驱动，
// 任务回调在 Update 内同步执行
type Scheduler struct {
	tasks []*ScheduledTask
}

// NewScheduler 创建调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After 在 delay 秒后执行 fn
func (s *Scheduler) After(delay float64, fn func()) *ScheduledTask {
	task := &ScheduledTask{remaining: delay, fn: fn}
	s.tasks = append(s.tasks, task)
	return task
}

// Update 推进所有任务的计时，触发到期任务
// 回调中新建的任务从下一次 Update 开始计时
func (s *Scheduler) Update(deltaTime float64) {
	if len(s.tasks) == 0 {
		return
	}

	current := s.tasks
	s.tasks = nil

	var due []*ScheduledTask
	for _, task := range current {
		if task.cancelled {
			continue
		}
		task.remaining -= deltaTime
		if task.remaining <= 0 {
			due = append(due, task)
			continue
		}
		s.tasks = append(s.tasks, task)
	}

	for _, task := range due {
		// 同一批中先触发的任务可能取消了后面的任务
		if task.cancelled {
			continue
		}
		task.fired = true
		task.fn()
	}
}

// Len 返回等待中的任务数量
func (s *Scheduler) Len() int {
	n := 0
	for _, task := range s.tasks {
		if task.Pending() {
			n++
		}
	}
	return n
}
