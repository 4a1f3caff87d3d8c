package services

import (
	"fmt"
	"strings"
	"time"
)

// MockGenerator simulates the model backend: it sleeps for a configured
// delay and returns deterministic placeholder content. One instance
// implements all three capabilities.
type MockGenerator struct {
	// Delay is the simulated processing latency. Zero skips the sleep.
	Delay time.Duration

	// now is swappable for deterministic URLs in tests.
	now func() time.Time
}

func NewMockGenerator(delay time.Duration) *MockGenerator {
	return &MockGenerator{Delay: delay, now: time.Now}
}

func (g *MockGenerator) simulate() {
	if g.Delay > 0 {
		time.Sleep(g.Delay)
	}
}

func (g *MockGenerator) GenerateImages(prompt, style, aspectRatio string, quantity int) ([]string, error) {
	g.simulate()

	urls := make([]string, 0, quantity)
	ratio := strings.ReplaceAll(aspectRatio, ":", "x")
	for i := 0; i < quantity; i++ {
		urls = append(urls, fmt.Sprintf("/api/images/placeholder-%s-%s-%d.png", style, ratio, i+1))
	}
	return urls, nil
}

func (g *MockGenerator) GenerateText(prompt, contentType, tone string, length int) (string, error) {
	g.simulate()

	kind := map[string]string{
		"article": "article",
		"story":   "story",
		"product": "product description",
		"email":   "email",
		"social":  "social media post",
	}[contentType]
	if kind == "" {
		kind = "piece of content"
	}

	return fmt.Sprintf(`This is a %s generated from your prompt %q.

The text uses a %s tone and targets roughly %d characters. In production this call is served by a real text generation API; the output here is a stand-in shaped by the same parameters.

Adjust the prompt, content type, tone and length to steer the result.`,
		kind, prompt, tone, length), nil
}

func (g *MockGenerator) ProcessAudio(processType, inputAudioURL, language, voiceID, text, quality string) (AudioOutput, error) {
	g.simulate()

	switch processType {
	case AudioProcessTranscription:
		return AudioOutput{TranscriptText: mockTranscript(language)}, nil
	case AudioProcessNoiseReduction:
		return AudioOutput{OutputAudioURL: fmt.Sprintf("/api/audio/processed-%d.mp3", g.now().UnixMilli())}, nil
	case AudioProcessVoiceSynthesis:
		return AudioOutput{OutputAudioURL: fmt.Sprintf("/api/audio/synthesized-%d.mp3", g.now().UnixMilli())}, nil
	}
	return AudioOutput{}, fmt.Errorf("unsupported process type: %s", processType)
}

func mockTranscript(language string) string {
	if language == "zh" {
		return `这是一个模拟的音频转录结果。实际应用中会使用语音识别服务（如 Whisper API）来转录音频内容。

音频转录可用于会议记录、采访整理、视频字幕制作等场景，转录质量取决于原始音频的清晰度、背景噪音和说话者的发音。`
	}

	return `This is a simulated audio transcription result. In production this call is served by a speech recognition service such as the Whisper API.

Audio transcription covers meeting records, interview notes and video subtitles; quality depends on the clarity of the source audio, background noise and speaker pronunciation.`
}
