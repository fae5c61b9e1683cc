package errs

var (
	SystemError         = ErrorCode{Code: 516001, Msg: "系统错误"}
	RecordingFailed     = ErrorCode{Code: 516002, Msg: "录制失败，请重试"}
	InvalidResume       = ErrorCode{Code: 416001, Msg: "简历格式不对，请上传 PDF、DOC、DOCX 或者 TXT"}
	InvalidVideo        = ErrorCode{Code: 416002, Msg: "视频格式不对"}
	ResumeRequired      = ErrorCode{Code: 416003, Msg: "请先上传简历"}
	ApplicationNotFound = ErrorCode{Code: 416004, Msg: "申请不存在"}
	JobNotFound         = ErrorCode{Code: 416005, Msg: "岗位不存在"}
	ArtifactNotReady    = ErrorCode{Code: 416006, Msg: "还没有完成这个阶段"}
	InvalidArtifactKind = ErrorCode{Code: 416007, Msg: "未知的类型"}
	MediaPermission     = ErrorCode{Code: 416008, Msg: "请允许访问摄像头和麦克风"}
	MediaUnavailable    = ErrorCode{Code: 416009, Msg: "没有找到可用的摄像头或者麦克风"}
	UploadNotFound      = ErrorCode{Code: 416010, Msg: "没有找到上传的文件"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
