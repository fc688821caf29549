package telegram

const welcomeMessage = `👋 Chào mừng đến với <b>ClickUp Task Assistant</b>!

Mình trả lời câu hỏi về task của team trực tiếp từ ClickUp:
• 📋 Task của một người, một phòng hoặc cả team
• 🔴 Task quá hạn, đến hạn hôm nay, bị kẹt
• ⏱ Thời gian làm việc đã track

<i>Ví dụ: "task quá hạn của Nam?", "tuần này An track được bao nhiêu giờ?"</i>`

const helpMessage = `<b>Cách sử dụng:</b>

Hỏi bằng ngôn ngữ tự nhiên, ví dụ:
• <i>task của phòng Backend hôm nay</i>
• <i>ai đang có nhiều task quá hạn nhất?</i>
• <i>tháng trước Bình track bao nhiêu giờ?</i>

Mình luôn lấy dữ liệu mới nhất từ ClickUp, không trả lời từ trí nhớ.`
