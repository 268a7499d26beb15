package speech

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"

	"konoba/config"
)

const maxAudioBytes = 10 << 20 // 10MB

// Package-level HTTP client for fetching attachment audio.
var audioHTTPClient = &http.Client{Timeout: 30 * time.Second}

// Transcriber wraps the Google Cloud Speech-to-Text client.
type Transcriber struct {
	client *speech.Client
}

// NewTranscriber initializes the Google STT client using the configured API key.
func NewTranscriber(ctx context.Context) (*Transcriber, error) {
	client, err := speech.NewClient(ctx, option.WithAPIKey(config.AppConfig.GoogleAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize speech client: %w", err)
	}
	return &Transcriber{client: client}, nil
}

// Close releases the underlying gRPC connection.
func (t *Transcriber) Close() error {
	return t.client.Close()
}

// wavHeader is the canonical 44-byte RIFF/WAVE header.
type wavHeader struct {
	ChunkID       [4]byte
	ChunkSize     uint32
	Format        [4]byte
	Subchunk1ID   [4]byte
	Subchunk1Size uint32
	AudioFormat   uint16
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
	DataTag       [4]byte
	DataSize      uint32
}

func parseWAVHeader(data []byte) (*wavHeader, error) {
	if len(data) < 44 {
		return nil, fmt.Errorf("audio too short for a WAV header")
	}
	var header wavHeader
	if err := binary.Read(bytes.NewReader(data[:44]), binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if string(header.ChunkID[:]) != "RIFF" || string(header.Format[:]) != "WAVE" {
		return nil, fmt.Errorf("not a RIFF/WAVE file")
	}
	return &header, nil
}

// TranscribeWAV recognizes speech in a PCM WAV recording. Sample rate and
// channel count are read from the file header.
func (t *Transcriber) TranscribeWAV(ctx context.Context, data []byte, language string) (string, error) {
	header, err := parseWAVHeader(data)
	if err != nil {
		return "", err
	}

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   int32(header.SampleRate),
			AudioChannelCount: int32(header.NumChannels),
			LanguageCode:      language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: data},
		},
	}
	return t.recognize(ctx, req)
}

// TranscribeURL downloads an audio attachment (WhatsApp voice notes arrive as
// OGG/Opus) and recognizes it.
func (t *Transcriber) TranscribeURL(ctx context.Context, url, language string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := audioHTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to download audio: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("audio download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read audio body: %w", err)
	}

	if _, err := parseWAVHeader(data); err == nil {
		return t.TranscribeWAV(ctx, data, language)
	}

	// WhatsApp voice notes are OGG/Opus at 48kHz.
	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:        speechpb.RecognitionConfig_OGG_OPUS,
			SampleRateHertz: 48000,
			LanguageCode:    language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: data},
		},
	}
	return t.recognize(ctx, req)
}

func (t *Transcriber) recognize(ctx context.Context, req *speechpb.RecognizeRequest) (string, error) {
	resp, err := t.client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	return strings.TrimSpace(transcript.String()), nil
}
