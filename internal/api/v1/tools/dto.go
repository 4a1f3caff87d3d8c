package tools

// GenerateImageRequest is the image tool's request body.
type GenerateImageRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	Style       string `json:"style" binding:"omitempty,oneof=realistic anime watercolor oil-painting sketch"`
	AspectRatio string `json:"aspectRatio" binding:"omitempty,oneof=1:1 16:9 9:16 4:3"`
	Quantity    int    `json:"quantity" binding:"omitempty,min=1,max=4"`
	Quality     string `json:"quality" binding:"omitempty,oneof=standard high"`
}

type GenerateTextRequest struct {
	Prompt      string `json:"prompt" binding:"required"`
	ContentType string `json:"contentType" binding:"omitempty,oneof=article story product email social"`
	Tone        string `json:"tone" binding:"omitempty,oneof=professional casual humorous formal neutral"`
	Length      int    `json:"length" binding:"omitempty,min=1,max=5000"`
	Quality     string `json:"quality" binding:"omitempty,oneof=standard high"`
}

type ProcessAudioRequest struct {
	ProcessType   string `json:"processType" binding:"required,oneof=transcription noise-reduction voice-synthesis"`
	InputAudioURL string `json:"inputAudioUrl" binding:"required"`
	Language      string `json:"language" binding:"omitempty"`
	VoiceID       string `json:"voiceId" binding:"omitempty"`
	Text          string `json:"text" binding:"omitempty"`
	Quality       string `json:"quality" binding:"omitempty,oneof=standard high"`
}

// ListQuery is the shared pagination query for tool listings.
type ListQuery struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"pageSize,default=10" binding:"omitempty,min=1,max=100"`
}
