// Package httpapi exposes the clustering engine over HTTP: submit a graph,
// poll a job's status, fetch its finished partition.
package httpapi

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nucleus/cnm-core/pkg/communitystore"
	"github.com/nucleus/cnm-core/pkg/jobqueue"
)

// Server holds the state for the REST API server.
type Server struct {
	queue  *jobqueue.Queue
	store  communitystore.Store
	router *gin.Engine
}

// NewServer creates a new Server instance.
func NewServer(queue *jobqueue.Queue, store communitystore.Store) *Server {
	r := gin.Default()

	s := &Server{
		queue:  queue,
		store:  store,
		router: r,
	}
	s.setupRoutes()
	return s
}

// Run starts the server on addr.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/v1/graphs", s.handleSubmitGraph)
	s.router.GET("/v1/jobs/:id", s.handleGetJob)
	s.router.GET("/v1/jobs/:id/communities", s.handleGetCommunities)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// submitGraphRequest is the wire format for POST /v1/graphs: a plain edge
// list over 0-indexed vertex ids, with vertexCount declared up front so
// isolated vertices with no edges are still represented.
type submitGraphRequest struct {
	VertexCount int      `json:"vertexCount"`
	Edges       [][2]int `json:"edges"`
}

func (s *Server) handleSubmitGraph(c *gin.Context) {
	var req submitGraphRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	g, err := buildGraph(req.VertexCount, req.Edges)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	jobID, err := s.queue.Submit(c.Request.Context(), g)
	if err != nil {
		log.Printf("httpapi: submit failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit job"})
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"jobId": jobID.String()})
}

func (s *Server) handleGetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := s.store.GetJob(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, job)
}

func (s *Server) handleGetCommunities(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := s.store.GetJob(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "job not found"})
		return
	}
	if job.Status != communitystore.JobSucceeded {
		c.JSON(http.StatusConflict, gin.H{"error": "job has not succeeded", "status": job.Status})
		return
	}

	rows, err := s.store.ListCommunities(c.Request.Context(), id)
	if err != nil {
		log.Printf("httpapi: list communities failed for job %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load communities"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"communities": rows})
}
