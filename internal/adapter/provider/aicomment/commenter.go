// Package aicomment generates diary comments with the OpenAI Responses API.
package aicomment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"github.com/heartmarshall/moodbook-backend/internal/domain"
)

const instructions = `You read one private diary entry and reply with a short, warm comment
addressed to its author. Two or three sentences. Acknowledge the feeling the
author expressed, never diagnose, never give medical advice. Reply in the
language the entry is written in.`

type commentResponse struct {
	Comment string `json:"comment" jsonschema:"required,description=The comment shown under the diary entry"`
}

var commentSchema = generateSchema[commentResponse]()

// Config holds commenter settings.
type Config struct {
	APIKey          string
	Model           string
	Timeout         time.Duration
	MaxOutputTokens int64
}

// Commenter asks an OpenAI model for a comment on an entry.
type Commenter struct {
	client    openai.Client
	model     string
	timeout   time.Duration
	maxTokens int64
	log       *slog.Logger
}

// NewCommenter creates a Commenter. Extra request options are appended
// after the API key (tests pass option.WithBaseURL).
func NewCommenter(logger *slog.Logger, cfg Config, opts ...option.RequestOption) *Commenter {
	reqOpts := append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(2),
	}, opts...)

	return &Commenter{
		client:    openai.NewClient(reqOpts...),
		model:     cfg.Model,
		timeout:   cfg.Timeout,
		maxTokens: cfg.MaxOutputTokens,
		log:       logger.With("adapter", "openai"),
	}
}

// Comment returns the model's comment on f.
func (c *Commenter) Comment(ctx context.Context, f domain.DiaryFields) (string, error) {
	if c.model == "" {
		return "", errors.New("aicomment: model is empty")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := responses.ResponseNewParams{
		Model:        c.model,
		Instructions: openai.String(instructions),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(buildPrompt(f), responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
					Name:        "DiaryComment",
					Schema:      commentSchema,
					Strict:      openai.Bool(true),
					Description: openai.String("Diary comment JSON"),
					Type:        "json_schema",
				},
			},
		},
	}
	if c.maxTokens > 0 {
		params.MaxOutputTokens = openai.Int(c.maxTokens)
	}

	start := time.Now()
	resp, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("aicomment: create response: %w", err)
	}

	var out commentResponse
	if err := json.Unmarshal([]byte(resp.OutputText()), &out); err != nil {
		return "", fmt.Errorf("aicomment: decode comment: %w", err)
	}

	c.log.DebugContext(ctx, "comment generated",
		slog.String("model", c.model),
		slog.Duration("took", time.Since(start)),
	)
	return strings.TrimSpace(out.Comment), nil
}

func buildPrompt(f domain.DiaryFields) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n", f.Title)
	fmt.Fprintf(&b, "Emotion: %s (%s)\n", f.EmotionMarker, domain.Classify(f.EmotionMarker))
	if f.Mood != "" {
		fmt.Fprintf(&b, "Mood: %s\n", f.Mood)
	}
	if f.Weather != nil {
		fmt.Fprintf(&b, "Weather: %s\n", *f.Weather)
	}
	if len(f.Activities) > 0 {
		fmt.Fprintf(&b, "Activities: %s\n", strings.Join(f.Activities, ", "))
	}
	fmt.Fprintf(&b, "\n%s\n", f.Note)
	return b.String()
}

func generateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	schema := reflector.Reflect(v)

	b, err := schema.MarshalJSON()
	if err != nil {
		panic(err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		panic(err)
	}
	// Strict structured output rejects open objects.
	m["additionalProperties"] = false
	delete(m, "$schema")
	delete(m, "$id")
	return m
}
