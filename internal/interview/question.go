// Package interview implements the structured error-report interview:
// a fixed question catalog, response collection through a pluggable
// answer provider, and rule-based summarization.
package interview

// Question is a single interview question. Key is the stable identifier
// used by answer files and form fields. Detail is an optional hint shown
// alongside the prompt; an empty string means no hint.
type Question struct {
	Key    string
	Prompt string
	Detail string
}

// defaultQuestions is the canonical catalog for error reports. Order is
// significant: it defines both prompting order and summary order.
var defaultQuestions = []Question{
	{
		Key:    "error_message",
		Prompt: "发生了什么错误？(What error did you see?)",
		Detail: "粘贴报错信息、截图或直观描述。",
	},
	{
		Key:    "expected",
		Prompt: "你本来期望发生什么？(What did you expect to happen?)",
		Detail: "描述理想结果或正确行为。",
	},
	{
		Key:    "steps",
		Prompt: "重现步骤是什么？(How can we reproduce it?)",
		Detail: "一步一步写出操作流程，包含输入、点击或命令。",
	},
	{
		Key:    "frequency",
		Prompt: "问题出现频率如何？(How often does it happen?)",
		Detail: "必现/偶现，最近一次出现时间。",
	},
	{
		Key:    "environment",
		Prompt: "运行环境是什么？(What environment are you using?)",
		Detail: "系统、浏览器或客户端版本、网络/权限限制。",
	},
	{
		Key:    "impact",
		Prompt: "影响有多大？(How is this impacting you?)",
		Detail: "阻塞程度、影响的用户或业务范围。",
	},
	{
		Key:    "workarounds",
		Prompt: "有没有临时解决方案？(Any workarounds tried?)",
		Detail: "暂时可用的替代方案或尝试过的操作。",
	},
	{
		Key:    "artifacts",
		Prompt: "有没有附件或日志？(Any logs or attachments?)",
		Detail: "日志片段、请求 ID、截图、视频等。",
	},
}

// DefaultQuestions returns a copy of the canonical error-report catalog.
// Each call returns an independent slice, so callers cannot corrupt the
// canonical order or content.
func DefaultQuestions() []Question {
	out := make([]Question, len(defaultQuestions))
	copy(out, defaultQuestions)
	return out
}
