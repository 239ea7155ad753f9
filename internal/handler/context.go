package handler

type ContextKey string

var (
	RoleCtxKey  ContextKey = "role"
	SubCtxKey   ContextKey = "sub"
	MyInfoCtx   ContextKey = "myInfo"
	ScheduleCtx ContextKey = "schedule"
	GridCtx     ContextKey = "plannerGrid"
	GridIDCtx   ContextKey = "plannerGridID"
)
