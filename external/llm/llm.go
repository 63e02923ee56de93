// Package llm extracts help request candidates by asking a generative model
// served behind an OpenAI compatible chat completion API.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"github.com/floodrelief/relief-api/schema"
)

const (
	logPrefix = "llm"

	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/openai"
	DefaultModel    = "gemini-1.5-flash"

	defaultTimeout = 60 * time.Second
	fragmentLength = 100
)

var (
	ErrMissingAPIKey = fmt.Errorf("llm api key is missing")
	ErrNoJSONArray   = fmt.Errorf("model reply does not contain a json array")
)

// ParseError is returned when the model reply cannot be read as a list of
// candidates. Fragment holds the start of the offending text.
type ParseError struct {
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse model reply: %s", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

const instruction = `คุณเป็นผู้ช่วยแยกข้อมูลผู้ประสบภัยน้ำท่วมจากข้อความที่คัดลอกมาจาก Facebook

แยกข้อความด้านล่างเป็น JSON array โดยแต่ละรายการมีฟิลด์:
- name: ชื่อผู้ขอความช่วยเหลือ
- phone: เบอร์โทรศัพท์รูปแบบไทย ถ้าไม่มีให้เป็น ""
- location: ที่อยู่ละเอียดที่สุด (บ้านเลขที่ ซอย ถนน หมู่ ตำบล อำเภอ จังหวัด)
- peopleCount: จำนวนคนเป็นตัวเลข ถ้าไม่มีให้ใช้ 1
- needs: array ของความต้องการมาตรฐาน เช่น ["น้ำดื่ม", "อาหาร", "ยา/การแพทย์", "รับ-ส่ง", "เสื้อผ้า"]
- priority: "High" ถ้ามีคำว่า ด่วน หรือ ฉุกเฉิน นอกนั้น "Normal"
- note: หมายเหตุเพิ่มเติม ไม่เกิน 150 ตัวอักษร

ข้อความแต่ละรายการคั่นด้วยบรรทัดว่าง หรือเครื่องหมาย ---
ตอบเป็น JSON array ที่ถูกต้องเท่านั้น ห้ามมีคำอธิบายอื่น

ข้อความ:
`

// Extractor is the model backed alternative to the rule based parser
type Extractor struct {
	client *openai.Client
	apiKey string
	model  string
}

// New returns an extractor. An empty apiKey is accepted here and reported
// as ErrMissingAPIKey by every Extract call.
func New(apiKey, endpoint, model string) *Extractor {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if model == "" {
		model = DefaultModel
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = strings.TrimRight(endpoint, "/")

	return &Extractor{
		client: openai.NewClientWithConfig(config),
		apiKey: apiKey,
		model:  model,
	}
}

// Extract sends the pasted text to the model and normalises its reply
func (e *Extractor) Extract(ctx context.Context, text string) ([]schema.HelpRequestCandidate, error) {
	if e.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"model":  e.model,
		"length": len(text),
	}).Debug("request extraction")

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: instruction + text,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, &ParseError{Err: ErrNoJSONArray}
	}

	return DecodeCandidates(resp.Choices[0].Message.Content)
}
