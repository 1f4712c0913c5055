package models

// PracticeParagraph is a generated Vietnamese paragraph for the learner to
// translate sentence by sentence. The model must return 7 to 10 sentences.
type PracticeParagraph struct {
	Sentences []string `json:"sentences" validate:"required,min=7,max=10,dive,required"`
	Topic     string   `json:"topic" validate:"required"`
}

type EvaluateRequest struct {
	OriginalSentence string `json:"originalSentence" validate:"required"`
	UserTranslation  string `json:"userTranslation" validate:"required"`
}

// TranslationIssue is one concrete mistake the grader found.
type TranslationIssue struct {
	Error       string `json:"error"`
	Correction  string `json:"correction"`
	Explanation string `json:"explanation"`
}

// Evaluation is the grader's verdict on a single (original, translation)
// pair. IsCorrect is derived server-side from the score, boundary at 7.
type Evaluation struct {
	Score                float64            `json:"score" validate:"gte=0,lte=10"`
	Feedback             string             `json:"feedback" validate:"required"`
	Errors               []TranslationIssue `json:"errors"`
	SuggestedTranslation string             `json:"suggestedTranslation" validate:"required"`
	IsCorrect            bool               `json:"isCorrect"`
}

// PracticeFallback is the canned paragraph returned when generation fails or
// the model's reply cannot be decoded.
func PracticeFallback() PracticeParagraph {
	return PracticeParagraph{
		Sentences: []string{
			"Hôm nay là một ngày đẹp trời.",
			"Tôi thức dậy lúc 6 giờ sáng.",
			"Sau khi tập thể dục, tôi ăn sáng cùng gia đình.",
			"Công việc hôm nay rất bận rộn.",
			"Tôi có một cuộc họp quan trọng lúc 10 giờ.",
			"Buổi trưa, tôi ăn cơm với đồng nghiệp.",
			"Chiều nay tôi sẽ hoàn thành dự án.",
		},
		Topic: "Một ngày làm việc",
	}
}

// EvaluationFallback is the fixed low-score verdict used when the grader's
// reply cannot be decoded.
func EvaluationFallback() Evaluation {
	return Evaluation{
		Score:                5,
		Feedback:             "Không thể phân tích kết quả. Vui lòng thử lại.",
		Errors:               []TranslationIssue{},
		SuggestedTranslation: "",
		IsCorrect:            false,
	}
}
