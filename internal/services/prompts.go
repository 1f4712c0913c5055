package services

import (
	"fmt"
	"strings"

	"github.com/quochoi227/ai-english-app/internal/models"
)

const defaultChatSystemPrompt = "Bạn là một trợ lý AI thông minh, thân thiện và hữu ích. " +
	"Hãy trả lời bằng tiếng Việt khi người dùng hỏi bằng tiếng Việt, và bằng tiếng Anh khi người dùng hỏi bằng tiếng Anh."

// BuildChatPrompt renders the conversation history into a single instruction.
// An empty systemPrompt falls back to the default bilingual instruction.
func BuildChatPrompt(messages []models.Message, systemPrompt string) string {
	lines := make([]string, 0, len(messages))
	for _, m := range messages {
		role := "User"
		if m.Role == "assistant" {
			role = "Assistant"
		}
		lines = append(lines, role+": "+m.Content)
	}

	if systemPrompt == "" {
		systemPrompt = defaultChatSystemPrompt
	}

	return fmt.Sprintf(`%s

Lịch sử cuộc trò chuyện:
%s

Hãy trả lời tin nhắn cuối cùng của người dùng một cách tự nhiên và hữu ích.`, systemPrompt, strings.Join(lines, "\n\n"))
}

// BuildTranslatePrompt asks for a context-appropriate Vietnamese-to-English
// translation as bare JSON: translation, nullable explanation (only for long
// inputs), and at most two alternatives.
func BuildTranslatePrompt(text, context string) string {
	return fmt.Sprintf(`Bạn là một chuyên gia dịch thuật Việt-Anh. Hãy dịch đoạn văn bản tiếng Việt sau sang tiếng Anh phù hợp với ngữ cảnh được cung cấp.

Văn bản cần dịch: "%s"
Ngữ cảnh sử dụng: %s

Yêu cầu:
1. Dịch chính xác, tự nhiên, phù hợp với ngữ cảnh
2. Nếu câu cần dịch dài (hơn 10 từ), hãy thêm phần giải thích ngắn gọn bằng tiếng Việt về cách dùng từ/cấu trúc ngữ pháp đặc biệt
3. Trả về JSON format với các trường:
   - translation: bản dịch tiếng Anh
   - explanation: giải thích (nếu cần, để null nếu không cần)
   - alternatives: mảng các cách dịch thay thế (tối đa 2 cách, nếu có)

Chỉ trả về JSON, không thêm markdown hay text khác.`, text, context)
}

// BuildPracticePrompt asks for an intermediate-difficulty Vietnamese paragraph
// of 7-10 sentences for the learner to translate.
func BuildPracticePrompt() string {
	return `Bạn là một giáo viên tiếng Anh chuyên nghiệp. Hãy tạo một đoạn văn "tiếng Việt" để người học dịch sang "tiếng Anh".

Yêu cầu:
1. Đoạn văn có từ 7 đến 10 câu
2. Nội dung đa dạng, thú vị (có thể về cuộc sống hàng ngày, công việc, du lịch, học tập, v.v.)
3. Độ khó vừa phải, phù hợp với người học trung cấp
4. Mỗi câu nên có độ dài từ 8-20 từ
5. Sử dụng ngữ pháp và từ vựng đa dạng

Trả về JSON format với trường:
- sentences: mảng các câu tiếng Việt
- topic: chủ đề của đoạn văn

Chỉ trả về JSON, không thêm markdown hay text khác.`
}

// BuildEvaluatePrompt asks the model to grade a learner's translation of one
// sentence: score 0-10, Vietnamese feedback, concrete errors, and a model
// translation.
func BuildEvaluatePrompt(originalSentence, userTranslation string) string {
	return fmt.Sprintf(`Bạn là một giáo viên tiếng Anh chuyên nghiệp. Hãy chấm điểm và nhận xét bản dịch của học viên.

Câu gốc (tiếng Việt): "%s"
Bản dịch của học viên: "%s"

Yêu cầu:
1. Chấm điểm từ 0-10 dựa trên độ chính xác ngữ pháp, từ vựng và ý nghĩa
2. Nhận xét bằng tiếng Việt, ngắn gọn và mang tính xây dựng
3. Chỉ ra các lỗi cụ thể (nếu có) và cách sửa
4. Cung cấp bản dịch mẫu chuẩn

Trả về JSON format với các trường:
- score: điểm số (0-10)
- feedback: nhận xét tổng quan bằng tiếng Việt
- errors: mảng các lỗi (mỗi lỗi có: error, correction, explanation)
- suggestedTranslation: bản dịch mẫu chuẩn
- isCorrect: true nếu điểm >= 7, false nếu điểm < 7

Chỉ trả về JSON, không thêm markdown hay text khác.`, originalSentence, userTranslation)
}
