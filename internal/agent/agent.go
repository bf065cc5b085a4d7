package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/format"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/lang"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/nl2sql"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/nlq"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/observability"
	"github.com/CathalGGallagher/utility-feed-product-agent-genui/internal/store"
)

// Agent answers bilingual natural language questions about feed products.
// The AI translator is optional; the rule compiler always works and is the
// silent fallback when translation fails.
type Agent struct {
	store      store.Store
	translator nl2sql.Translator
	dict       *lang.Dictionary
	formatter  *format.Formatter
	logger     *slog.Logger
}

// Result is the full outcome of one processed question.
type Result struct {
	Success  bool             `json:"success"`
	Language string           `json:"language"`
	SQL      string           `json:"sql"`
	Data     []map[string]any `json:"data"`
	Response string           `json:"response"`
	Error    string           `json:"error,omitempty"`
}

func New(st store.Store, translator nl2sql.Translator, logger *slog.Logger) *Agent {
	dict := lang.NewDictionary()
	return &Agent{
		store:      st,
		translator: translator,
		dict:       dict,
		formatter:  format.New(dict),
		logger:     logger,
	}
}

// ProcessQuery runs the full pipeline: detect the language, normalize
// Arabic text, produce SQL via the provider or the rule compiler, execute
// it and format a localized answer. It never panics outward; unexpected
// faults produce a generic localized error.
func (a *Agent) ProcessQuery(ctx context.Context, question string) (result Result) {
	start := time.Now()
	locale := lang.Detect(question)
	result.Language = string(locale)

	defer func() {
		if r := recover(); r != nil {
			a.logger.ErrorContext(ctx, "query processing panic", slog.Any("panic", r))
			result = Result{
				Language: string(locale),
				Response: a.formatter.GenericError(locale),
				Error:    "internal error",
			}
		}
	}()

	normalized := question
	if locale == lang.LocaleArabic {
		normalized = a.dict.Normalize(question)
	}

	intent := nlq.ClassifyIntent(normalized, question)
	entities := nlq.ExtractEntities(a.dict, normalized, question)
	typeFacet := nlq.ProductTypeFacet(normalized, question)

	sqlText, args, template := a.plan(ctx, normalized, locale, intent, entities, typeFacet)
	result.SQL = sqlText

	queryResult, err := a.store.Execute(ctx, sqlText, args...)
	if err != nil {
		observability.IncrementExecutionFailure()
		a.logger.ErrorContext(ctx, "query execution failed",
			slog.String("intent", string(intent)),
			slog.String("error", err.Error()))
		result.Error = err.Error()
		result.Response = a.formatter.ExecError(locale, err.Error())
		return result
	}

	result.Data = queryResult.Maps()
	result.Response = a.formatter.Format(locale, template, result.Data)
	result.Success = true

	observability.ObserveQuery(string(intent), string(locale), time.Since(start), len(result.Data) == 0)
	a.logger.InfoContext(ctx, "query processed",
		slog.String("intent", string(intent)),
		slog.String("language", string(locale)),
		slog.Int("rows", len(result.Data)),
		slog.String("duration", time.Since(start).String()))
	return result
}

// plan chooses between the AI provider and the rule compiler. Provider
// failures are logged and fall through to the compiler without surfacing
// to the caller.
func (a *Agent) plan(ctx context.Context, normalized string, locale lang.Locale, intent nlq.Intent, entities nlq.Entities, typeFacet string) (string, []any, string) {
	if a.translator != nil {
		translated, err := a.translator.Translate(ctx, nl2sql.Request{
			Question: normalized,
			Language: string(locale),
		})
		if err == nil {
			observability.ObserveProviderRequest("success")
			template := translated.ResponseTemplate
			if template == "" {
				template = "results"
			}
			return translated.SQL, nil, template
		}
		observability.ObserveProviderRequest("error")
		observability.IncrementProviderFallback()
		a.logger.WarnContext(ctx, "provider translation failed, using rule compiler",
			slog.String("error", err.Error()))
	}

	compiled := nlq.Compile(intent, entities, typeFacet)
	return compiled.SQL, compiled.Args, compiled.Template
}
