package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/carlosmalvarenga1-rgb/civilrightsalert/internal/handler"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/pkg/congress"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/pkg/legistar"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/pkg/llm"
	"github.com/carlosmalvarenga1-rgb/civilrightsalert/pkg/openstates"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// newRewriter picks a plain-language provider from the environment. OpenAI
// wins when both keys are present.
func newRewriter() llm.Rewriter {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		slog.Info("plain-language rewrites enabled", "provider", "openai")
		return llm.NewOpenAIClient(key)
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		slog.Info("plain-language rewrites enabled", "provider", "anthropic")
		return llm.NewAnthropicClient(key)
	}
	slog.Info("no rewrite provider configured, serving official summaries only")
	return nil
}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// Upstream clients are optional at startup; endpoints whose source is
	// missing report the misconfiguration per request.
	var federal *congress.Client
	if key := os.Getenv("CONGRESS_API_KEY"); key != "" {
		federal = congress.NewClient(key)
	} else {
		slog.Warn("CONGRESS_API_KEY not set, /bills and /bill-detail will report an error")
	}

	var state *openstates.Client
	if key := os.Getenv("OPENSTATES_API_KEY"); key != "" {
		state = openstates.NewClient(key)
	} else {
		slog.Warn("OPENSTATES_API_KEY not set, /state-bills will report an error")
	}

	// Legistar's public read API works without a token for most clients.
	municipal := legistar.NewClient(os.Getenv("LEGISTAR_API_TOKEN"))

	billsHandler := handler.NewBillsHandler(sourceOrNil(federal))
	billDetailHandler := handler.NewBillDetailHandler(detailSourceOrNil(federal), newRewriter())
	stateBillsHandler := handler.NewStateBillsHandler(stateSourceOrNil(state))
	councilHandler := handler.NewCouncilHandler(municipal)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic recovered", "error", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	r.GET("/bills", billsHandler.GetBills)
	r.GET("/bill-detail", billDetailHandler.GetBillDetail)
	r.GET("/state-bills", stateBillsHandler.GetStateBills)
	r.GET("/city-council", councilHandler.GetCityCouncil)
	r.GET("/health", handler.GetHealth)

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// A nil *congress.Client must become a nil interface, not a typed nil, so
// the handlers' missing-source checks work.
func sourceOrNil(c *congress.Client) handler.FederalSource {
	if c == nil {
		return nil
	}
	return c
}

func detailSourceOrNil(c *congress.Client) handler.BillDetailSource {
	if c == nil {
		return nil
	}
	return c
}

func stateSourceOrNil(c *openstates.Client) handler.StateSource {
	if c == nil {
		return nil
	}
	return c
}
