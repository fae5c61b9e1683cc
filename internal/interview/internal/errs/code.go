package errs

var (
	SystemError         = ErrorCode{Code: 517001, Msg: "系统错误"}
	ApplicationNotFound = ErrorCode{Code: 417001, Msg: "申请不存在"}
	JobNotFound         = ErrorCode{Code: 417002, Msg: "岗位不存在"}
	VideoRequired       = ErrorCode{Code: 417003, Msg: "请先完成视频录制"}
	InterviewCompleted  = ErrorCode{Code: 417004, Msg: "面试已经完成"}
	SessionActive       = ErrorCode{Code: 417005, Msg: "面试正在其他页面进行中"}
	MediaPermission     = ErrorCode{Code: 417006, Msg: "请允许访问麦克风"}
	MediaUnavailable    = ErrorCode{Code: 417007, Msg: "没有找到可用的麦克风"}
	// AgentConfiguration 需要管理员处理，重试没有用
	AgentConfiguration = ErrorCode{Code: 417008, Msg: "面试服务配置有误，请联系管理员"}
	AgentUnavailable   = ErrorCode{Code: 417009, Msg: "连接面试服务失败，请重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
