package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/roster/internal/config"
	"github.com/agenthands/roster/internal/core"
	"github.com/agenthands/roster/internal/core/aivalidate"
	"github.com/agenthands/roster/internal/core/model"
	"github.com/agenthands/roster/internal/llm"
)

type Server struct {
	Engine *core.Engine
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}

	// Env vars win over the file.
	if envProvider := os.Getenv("LLM_PROVIDER"); envProvider != "" {
		cfg.LLM.Provider = envProvider
	}
	if envModel := os.Getenv("LLM_MODEL"); envModel != "" {
		cfg.LLM.Model = envModel
	}
	if envAPIKey := os.Getenv("LLM_API_KEY"); envAPIKey != "" {
		cfg.LLM.APIKey = envAPIKey
	}
	if envBaseURL := os.Getenv("LLM_BASE_URL"); envBaseURL != "" {
		cfg.LLM.BaseURL = envBaseURL
	}

	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
		cfg.LLM.Model = "gpt-oss:latest"
		cfg.LLM.BaseURL = "http://localhost:11434"
	}

	llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	engine := core.NewEngine(aivalidate.NewLLMBatchClient(llmClient), cfg)

	return &Server{Engine: engine}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/records", s.LoadRecords)
	r.GET("/records", s.ListRecords)
	r.PATCH("/records/:id", s.UpdateRecord)
	r.DELETE("/records", s.ClearRecords)

	r.POST("/validate", s.Validate)
	r.POST("/validate/ai", s.ValidateAI)
	r.GET("/duplicates", s.Duplicates)

	r.POST("/records/:id/corrections/:field/apply", s.ApplyCorrection)
	r.POST("/records/:id/fields/:field/mark-valid", s.MarkFieldValid)

	r.GET("/stats", s.GetStats)

	return r
}

type LoadRecordsRequest struct {
	Records []model.Record `json:"records"`
}

func (s *Server) LoadRecords(c *gin.Context) {
	var req LoadRecordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	records := s.Engine.LoadRecords(req.Records)
	s.Engine.ValidateAll()

	c.JSON(http.StatusOK, gin.H{"records": records, "stats": s.Engine.Stats()})
}

func (s *Server) ListRecords(c *gin.Context) {
	records := s.Engine.Records()
	results := make(map[string]model.ValidationResult, len(records))
	for _, r := range records {
		if result, ok := s.Engine.Result(r.RecordID); ok {
			results[r.RecordID] = result
		}
	}
	c.JSON(http.StatusOK, gin.H{"records": records, "validationResults": results})
}

func (s *Server) UpdateRecord(c *gin.Context) {
	var updates map[string]string
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	recordID := c.Param("id")
	if err := s.Engine.UpdateRecord(recordID, updates); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	result, _ := s.Engine.Result(recordID)
	c.JSON(http.StatusOK, gin.H{"validationResult": result})
}

func (s *Server) ClearRecords(c *gin.Context) {
	s.Engine.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func (s *Server) Validate(c *gin.Context) {
	s.Engine.ValidateAll()
	c.JSON(http.StatusOK, gin.H{"stats": s.Engine.Stats()})
}

func (s *Server) ValidateAI(c *gin.Context) {
	// Runs to completion before answering; progress lands in the log. The
	// run itself never fails, degraded batches come back as SYSTEM_ERROR
	// results.
	s.Engine.ValidateWithAI(c.Request.Context(), func(pct int) {
		log.Printf("AI validation progress: %d%%", pct)
	})
	c.JSON(http.StatusOK, gin.H{"stats": s.Engine.Stats()})
}

func (s *Server) Duplicates(c *gin.Context) {
	found := s.Engine.DetectDuplicates()
	c.JSON(http.StatusOK, gin.H{"duplicates": found})
}

func (s *Server) ApplyCorrection(c *gin.Context) {
	correction, err := s.Engine.ApplyCorrection(c.Param("id"), c.Param("field"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": correction})
}

func (s *Server) MarkFieldValid(c *gin.Context) {
	s.Engine.MarkFieldValid(c.Param("id"), c.Param("field"))
	result, _ := s.Engine.Result(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"validationResult": result})
}

func (s *Server) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.Engine.Stats())
}
