package app

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"go-emotive/analysis"
	"go-emotive/bluesky"
	"go-emotive/config"
	"go-emotive/cronjobs"
	"go-emotive/db"
	"go-emotive/emotion"
	"go-emotive/feedback"
	"go-emotive/langdetect"
	"go-emotive/langname"
	"go-emotive/mlmodel"
	"go-emotive/nlp"
	"go-emotive/routes"
	"go-emotive/sentiment"
	"go-emotive/translate"
)

// App holds every wired service for one process.
type App struct {
	Config   config.Config
	Log      *logrus.Logger
	Analyzer *analysis.Analyzer
	History  db.Store
	Feedback *feedback.Client
	Feed     *bluesky.Client
	Names    *langname.Resolver

	emotion   *emotion.Classifier
	sentiment *sentiment.Classifier
	cron      *cron.Cron
	closers   []func()
}

// New builds the backends selected by cfg.
func New(ctx context.Context, cfg config.Config, log *logrus.Logger) (*App, error) {
	a := &App{Config: cfg, Log: log, Names: langname.NewResolver()}

	var cloud nlp.SentimentAPI
	if cfg.Models.DetectorBackend == config.DetectorGCP || cfg.Models.SentimentBackend == config.SentimentGCP {
		client, err := nlp.InitLanguageClient(ctx, cfg.Cloud.NaturalLanguageCredentials)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, nlp.CloseLanguageClient)
		cloud = client
	}

	var detector analysis.Detector
	switch cfg.Models.DetectorBackend {
	case config.DetectorGCP:
		detector = langdetect.NewCloud(cloud)
	case config.DetectorWhatlang:
		detector = langdetect.NewWhatlang()
	default:
		detector = langdetect.NewLingua()
	}

	var backend translate.Backend
	switch cfg.Translator.Backend {
	case config.TranslatorOpenAI:
		oc := openai.NewClient(cfg.Translator.OpenAIKey)
		backend = translate.NewOpenAI(oc, cfg.Translator.OpenAIModel)
	default:
		backend = translate.NewGoogle(cfg.Translator.Tries)
	}

	models := mlmodel.NewClient(cfg.Models.HFBaseURL, cfg.Models.HFToken, cfg.Models.Timeout)
	a.emotion = emotion.NewClassifier(emotion.NewHostedScorer(models, cfg.Models.EmotionModel))

	var sentimentBackend sentiment.Backend
	switch cfg.Models.SentimentBackend {
	case config.SentimentVader:
		sentimentBackend = sentiment.NewVader()
	case config.SentimentGCP:
		sentimentBackend = sentiment.NewCloud(cloud)
	default:
		sentimentBackend = sentiment.NewHosted(models, cfg.Models.SentimentModel)
	}
	a.sentiment = sentiment.NewClassifier(sentimentBackend)

	deps := analysis.Deps{
		Detector:   detector,
		Translator: translate.New(backend),
		Emotion:    a.emotion,
		Sentiment:  a.sentiment,
		Names:      a.Names,
		Log:        log,
	}

	switch cfg.History.Backend {
	case config.HistoryMemory:
		store := db.NewMemoryStore(cfg.History.Size)
		a.History, deps.Recorder = store, store
	case config.HistoryFirestore:
		client, err := db.InitFirestore(ctx, cfg.Cloud.FirebaseCredentials)
		if err != nil {
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, db.CloseFirestore)
		store := db.NewFirestoreStore(client)
		a.History, deps.Recorder = store, store
	}

	analyzer, err := analysis.NewAnalyzer(deps)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Analyzer = analyzer

	a.Feedback = feedback.NewClient(cfg.Feedback.FormURL, cfg.Feedback.EntryID, cfg.Feedback.Timeout)
	a.Feed = bluesky.NewClient(cfg.Bluesky.Host, cfg.Bluesky.Timeout)

	return a, nil
}

// StartCron schedules model warm-up when WARMUP_SCHEDULE is set.
func (a *App) StartCron() error {
	warmers := map[string]cronjobs.Warmer{
		"emotion": cronjobs.WarmerFunc(func(ctx context.Context, text string) error {
			_, err := a.emotion.Classify(ctx, text)
			return err
		}),
		"sentiment": cronjobs.WarmerFunc(func(ctx context.Context, text string) error {
			_, err := a.sentiment.Classify(ctx, text)
			return err
		}),
	}
	c, err := cronjobs.InitCronJobs(a.Config.Warmup.Schedule, a.Config.Models.Timeout, a.Log, warmers)
	if err != nil {
		return fmt.Errorf("start warm-up: %w", err)
	}
	a.cron = c
	return nil
}

// RouterDeps exposes the services the HTTP layer needs.
func (a *App) RouterDeps() routes.Deps {
	return routes.Deps{
		Analyzer: a.Analyzer,
		Names:    a.Names,
		Feedback: a.Feedback,
		History:  a.History,
		Feed:     a.Feed,
		Log:      a.Log,
	}
}

// Close stops the scheduler and releases cloud clients.
func (a *App) Close() {
	if a.cron != nil {
		<-a.cron.Stop().Done()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
