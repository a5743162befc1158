package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/setterlabs/crm-backend/internal/agent"
	"github.com/setterlabs/crm-backend/internal/api/handlers"
	"github.com/setterlabs/crm-backend/internal/api/middleware"
	"github.com/setterlabs/crm-backend/internal/audit"
	"github.com/setterlabs/crm-backend/internal/auth"
	"github.com/setterlabs/crm-backend/internal/cache"
	"github.com/setterlabs/crm-backend/internal/catalog"
	"github.com/setterlabs/crm-backend/internal/client"
	"github.com/setterlabs/crm-backend/internal/config"
	"github.com/setterlabs/crm-backend/internal/contacts"
	"github.com/setterlabs/crm-backend/internal/conversation"
	"github.com/setterlabs/crm-backend/internal/delivery"
	"github.com/setterlabs/crm-backend/internal/llm"
	"github.com/setterlabs/crm-backend/internal/prompt"
	"github.com/setterlabs/crm-backend/internal/queue"
)

type Router struct {
	mux   *chi.Mux
	db    *pgxpool.Pool
	redis *redis.Client
	cfg   *config.Config
	cs    *client.Service
	jwt   *auth.JWTMiddleware
	llmGW llm.Gateway
}

func NewRouter(db *pgxpool.Pool, rdb *redis.Client, cfg *config.Config) *Router {
	cs := client.NewService(db)
	return &Router{
		mux:   chi.NewRouter(),
		db:    db,
		redis: rdb,
		cfg:   cfg,
		cs:    cs,
		jwt:   auth.NewJWTMiddleware(cfg.Auth.JWTSecret, cs),
		llmGW: llm.NewGateway(cfg.LLM),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.Server.AllowedOrigins))

	rl := middleware.NewRateLimiter(100, 200)
	r.Use(rl.Limit)

	// Health endpoints (no auth)
	health := handlers.NewHealthHandler(rt.db, rt.redis)
	r.Get("/healthz", health.Healthz)
	r.Get("/readyz", health.Readyz)

	// Agent pipeline
	redisCache := cache.NewCache(rt.redis)
	catalogStore := catalog.NewPGStore(rt.db, redisCache)
	matcher := catalog.NewMatcher(catalogStore, rt.cfg.Agent.SearchLimit)
	resolver := prompt.NewResolver(prompt.NewPGStore(rt.db))
	zones := delivery.NewService(rt.db, redisCache)
	responder := agent.NewResponder(resolver, matcher, zones, rt.llmGW, rt.cfg.LLM.DefaultModel, rt.cfg.Agent).
		WithUsageRecorder(audit.NewService(rt.db))

	conversations := conversation.NewMemoryStore(rt.cfg.Agent.HistoryMaxTurns)
	queueClient := queue.NewClient(rt.cfg.Redis)

	chatH := handlers.NewChatHandler(responder, conversations, rt.cs, queueClient, rt.cfg.Agent)
	demoH := handlers.NewDemoHandler()
	configH := handlers.NewConfigHandler()

	// Demo surface (no auth, same as the dashboard it feeds)
	r.Post("/webhook/demo-message", chatH.DemoMessage)

	r.Route("/api/demo", func(r chi.Router) {
		r.Get("/stats", demoH.Stats)
		r.Get("/conversations", demoH.Conversations)
		r.Get("/conversation/{convId}", chatH.ConversationHistory)
		r.Get("/leads", demoH.Leads)
	})

	r.Route("/api/conversations", func(r chi.Router) {
		r.Get("/{channel}", demoH.ChannelConversations)
		r.Post("/{convId}/messages", chatH.SendMessage)
		r.Post("/{convId}/toggle-ai", chatH.ToggleAI)
	})

	r.Get("/api/config", configH.ClientConfig)

	// CRM data requires a token
	productH := handlers.NewProductHandler(catalogStore, slog.Default())
	contactH := handlers.NewContactHandler(contacts.NewService(rt.db), slog.Default())

	r.Group(func(r chi.Router) {
		r.Use(rt.jwt.Authenticate)

		r.Route("/api/products", func(r chi.Router) {
			r.Get("/", productH.List)
			r.Get("/categories", productH.Categories)
			r.Get("/{id}", productH.Get)
		})

		r.Route("/api/contacts", func(r chi.Router) {
			r.Get("/", contactH.List)
			r.Get("/stats", contactH.Stats)
		})
	})

	return r
}
