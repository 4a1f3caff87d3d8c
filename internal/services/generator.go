package services

// Generator capabilities stand between the feature services and the model
// backend. The services depend only on these interfaces; the mock variants
// below are the default implementations, and a real API-backed variant can
// be swapped in without touching the services.

type ImageGenerator interface {
	// GenerateImages returns one URL per requested image.
	GenerateImages(prompt, style, aspectRatio string, quantity int) ([]string, error)
}

type TextGenerator interface {
	GenerateText(prompt, contentType, tone string, length int) (string, error)
}

// AudioOutput is the result of one audio operation: a transcript for
// transcription, an output URL for everything else.
type AudioOutput struct {
	OutputAudioURL string
	TranscriptText string
}

type AudioProcessor interface {
	ProcessAudio(processType, inputAudioURL, language, voiceID, text, quality string) (AudioOutput, error)
}
