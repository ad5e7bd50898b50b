package server

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/raysh454/aria/internal/interfaces"
	"github.com/raysh454/aria/internal/model"
)

type JobEventType string

const (
	JobEventStatus   JobEventType = "status"
	JobEventProgress JobEventType = "progress"
	JobEventResult   JobEventType = "result"
)

type JobEvent struct {
	JobID string       `json:"job_id"`
	Type  JobEventType `json:"type"`

	// For status changes
	Status JobStatus `json:"status,omitempty"`
	Error  string    `json:"error,omitempty"`

	// For progress updates
	Stage string `json:"stage,omitempty"`
}

type JobStatus string

const (
	JobPending  JobStatus = "pending"
	JobRunning  JobStatus = "running"
	JobDone     JobStatus = "done"
	JobFailed   JobStatus = "failed"
	JobCanceled JobStatus = "canceled"
)

// Job tracks one page analysis from request to report. Events carries
// progress updates to websocket subscribers and is closed when the job ends.
type Job struct {
	ID        string        `json:"id"`
	URL       string        `json:"url"`
	Status    JobStatus     `json:"status"`
	Error     string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Events    chan JobEvent `json:"-"`

	Report      *model.AnalysisReport `json:"report,omitempty"`
	Suggestions []model.Suggestion    `json:"suggestions,omitempty"`
}

func (s *Server) emitJobEvent(jobID string, ev JobEvent) {
	s.jobsMu.Lock()
	job, ok := s.jobs[jobID]
	s.jobsMu.Unlock()
	if !ok || job == nil || job.Events == nil {
		return
	}

	// Non-blocking send; drop if buffer is full.
	select {
	case job.Events <- ev:
	default:
	}
}

func (s *Server) setJobStatus(jobID string, status JobStatus, errMsg string) {
	s.jobsMu.Lock()
	if j, ok := s.jobs[jobID]; ok {
		j.Status = status
		j.Error = errMsg
	}
	s.jobsMu.Unlock()
	s.emitJobEvent(jobID, JobEvent{
		JobID:  jobID,
		Type:   JobEventStatus,
		Status: status,
		Error:  errMsg,
	})
}

// startAnalysisJob registers a new job and runs the analysis pipeline in a
// goroutine. The returned Job is live; read its Events channel for progress.
func (s *Server) startAnalysisJob(ctx context.Context, url string, withSuggestions bool) *Job {
	jobID := uuid.New().String()
	now := time.Now().UTC()

	job := &Job{
		ID:        jobID,
		URL:       url,
		Status:    JobPending,
		StartedAt: now,
		Events:    make(chan JobEvent, 16),
	}

	s.jobsMu.Lock()
	s.jobs[jobID] = job
	s.jobsMu.Unlock()

	jobCtx, cancel := context.WithCancel(ctx)
	s.jobsMu.Lock()
	s.jobCancels[jobID] = cancel
	s.jobsMu.Unlock()

	s.emitJobEvent(jobID, JobEvent{
		JobID:  jobID,
		Type:   JobEventStatus,
		Status: JobPending,
	})

	go s.runAnalysisJob(jobCtx, jobID, url, withSuggestions)

	return job
}

func (s *Server) runAnalysisJob(ctx context.Context, jobID, url string, withSuggestions bool) {
	defer func() {
		s.jobsMu.Lock()
		if j, ok := s.jobs[jobID]; ok {
			j.EndedAt = time.Now().UTC()
		}
		delete(s.jobCancels, jobID)
		s.jobsMu.Unlock()

		// Close events channel so websocket loops terminate cleanly
		s.jobsMu.Lock()
		j := s.jobs[jobID]
		s.jobsMu.Unlock()
		if j != nil && j.Events != nil {
			close(j.Events)
		}
	}()

	s.setJobStatus(jobID, JobRunning, "")
	s.emitJobEvent(jobID, JobEvent{JobID: jobID, Type: JobEventProgress, Stage: "analyzing"})

	report, err := s.analyzer.Analyze(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			s.setJobStatus(jobID, JobCanceled, ctx.Err().Error())
			return
		}
		s.logger.Warn("analysis job failed",
			interfaces.Field{Key: "job_id", Value: jobID},
			interfaces.Field{Key: "url", Value: url},
			interfaces.Field{Key: "error", Value: err.Error()})
		s.setJobStatus(jobID, JobFailed, err.Error())
		return
	}

	var suggestions []model.Suggestion
	if withSuggestions && s.suggester != nil {
		s.emitJobEvent(jobID, JobEvent{JobID: jobID, Type: JobEventProgress, Stage: "suggesting"})
		suggestions = s.suggester.SuggestBatch(ctx, report)
	}

	if ctx.Err() != nil {
		s.setJobStatus(jobID, JobCanceled, ctx.Err().Error())
		return
	}

	s.jobsMu.Lock()
	if j, ok := s.jobs[jobID]; ok {
		j.Status = JobDone
		j.Report = report
		j.Suggestions = suggestions
	}
	s.jobsMu.Unlock()
	s.emitJobEvent(jobID, JobEvent{
		JobID:  jobID,
		Type:   JobEventResult,
		Status: JobDone,
	})
}

// GetJob returns the job with the given ID, or nil.
func (s *Server) GetJob(jobID string) *Job {
	s.jobsMu.Lock()
	defer s.jobsMu.Unlock()
	return s.jobs[jobID]
}

// ListJobs returns all known jobs.
func (s *Server) ListJobs() []*Job {
	s.jobsMu.Lock()
	defer s.jobsMu.Unlock()
	jobs := make([]*Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, j)
	}
	return jobs
}

// CancelJob cancels a running job. Unknown or finished jobs are a no-op.
func (s *Server) CancelJob(jobID string) {
	s.jobsMu.Lock()
	cancel := s.jobCancels[jobID]
	s.jobsMu.Unlock()
	if cancel != nil {
		cancel()
	}
}
