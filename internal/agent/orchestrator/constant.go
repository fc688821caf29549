package orchestrator

// Configuration
const (
	// MaxModelTurns bounds the reason/act loop per incoming message.
	MaxModelTurns = 6

	// MaxSessionHistory is how many stored messages feed each model call.
	MaxSessionHistory = 10

	// SummarizeThresholdBytes triggers tool-result reduction before the
	// result is fed back to the model.
	SummarizeThresholdBytes = 8_000

	// ToolLoadAndFilterTasks is the primary data tool; its rendered output
	// goes straight to the user.
	ToolLoadAndFilterTasks = "load_and_filter_tasks"

	// ToolGetTimeTracked renders its report the same way.
	ToolGetTimeTracked = "get_time_tracked"
)

// Date format
const (
	DateFormatISO = "2006-01-02"
)

// Time context template
const (
	TimeContextTemplate = `

[SYSTEM CONTEXT - Thông tin thời gian hiện tại]
- Hôm nay: %s (%s)
- Tuần này: từ %s đến %s
- Múi giờ: %s

QUY TẮC QUAN TRỌNG:
1. Mọi mốc "hôm nay", "tuần này", "quá hạn" đều tính theo múi giờ trên
2. KHÔNG BAO GIỜ hỏi ngược lại user về ngày tháng cụ thể
3. Tự động nội suy các mốc thời gian tương đối`
)

// Session context lines, assembled from the user's saved state.
const (
	SessionContextHeader = `

[SESSION CONTEXT - Ngữ cảnh hội thoại]`
	SessionPersonLine     = "\n- Người đang được nhắc đến: %s (id %s)"
	SessionDepartmentLine = "\n- Phòng ban đang được nhắc đến: %s"
	SessionPronounRule    = "\nNếu user dùng đại từ (\"anh ấy\", \"bạn đó\", \"người này\", \"phòng đó\"), hãy hiểu là đối tượng ở trên."
)

// System prompt
const (
	SystemPromptAgent = `Bạn là trợ lý quản lý công việc của team, kết nối trực tiếp với ClickUp.
Nhiệm vụ của bạn là trả lời câu hỏi về task, deadline và thời gian làm việc của các thành viên.

QUY TẮC BẮT BUỘC:
1. Mọi câu hỏi về task hiện tại PHẢI gọi tool load_and_filter_tasks - KHÔNG BAO GIỜ trả lời từ trí nhớ
2. Khi user nhắc đến một người cụ thể, gọi update_context để ghi nhớ người đó
3. Câu hỏi về thời gian làm việc dùng tool get_time_tracked
4. Trả lời ngắn gọn, thân thiện, xưng "mình"`
)

// Error messages returned to the user
const (
	ErrMsgMaxStepsExceeded   = "Trợ lý đã suy nghĩ quá lâu (vượt quá số bước cho phép). Vui lòng thử chia nhỏ câu hỏi."
	ErrMsgContractViolation  = "Mình chưa lấy được dữ liệu task mới nhất cho câu hỏi này. Bạn thử hỏi lại cụ thể hơn nhé."
	ErrMsgQuotaExceeded      = "Hệ thống AI đã hết hạn mức sử dụng. Vui lòng liên hệ quản trị viên."
	ErrMsgRateLimited        = "Hệ thống AI đang quá tải, bạn chờ một chút rồi thử lại nhé."
	ErrMsgInvalidCredentials = "Cấu hình AI không hợp lệ. Vui lòng liên hệ quản trị viên."
	ErrMsgModelUnavailable   = "Model AI hiện không khả dụng. Vui lòng liên hệ quản trị viên."
	ErrMsgGeneric            = "Có lỗi xảy ra khi xử lý câu hỏi. Bạn thử lại sau nhé."
)
