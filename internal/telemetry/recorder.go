// Package telemetry keeps in-process counters for one run of the app.
// Nothing is persisted or exported; the UI footer reads a snapshot.
package telemetry

import (
	"sync"
	"time"
)

// Recorder counts session activity and external-call outcomes.
type Recorder struct {
	mu                  sync.Mutex
	interviewsStarted   int64
	interviewsCompleted int64
	questionsAnswered   int64
	apiCallsTotal       int64
	apiCallsFailed      int64
	lastUpdate          time.Time
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	InterviewsStarted   int64     `json:"interviewsStarted"`
	InterviewsCompleted int64     `json:"interviewsCompleted"`
	QuestionsAnswered   int64     `json:"questionsAnswered"`
	APICallsTotal       int64     `json:"apiCallsTotal"`
	APICallsFailed      int64     `json:"apiCallsFailed"`
	LastUpdate          time.Time `json:"lastUpdate"`
}

func NewRecorder() *Recorder {
	return &Recorder{lastUpdate: time.Now()}
}

func (r *Recorder) InterviewStarted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interviewsStarted++
	r.lastUpdate = time.Now()
}

func (r *Recorder) InterviewCompleted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interviewsCompleted++
	r.lastUpdate = time.Now()
}

func (r *Recorder) QuestionAnswered() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.questionsAnswered++
	r.lastUpdate = time.Now()
}

func (r *Recorder) APICall(success bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apiCallsTotal++
	if !success {
		r.apiCallsFailed++
	}
	r.lastUpdate = time.Now()
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Snapshot{
		InterviewsStarted:   r.interviewsStarted,
		InterviewsCompleted: r.interviewsCompleted,
		QuestionsAnswered:   r.questionsAnswered,
		APICallsTotal:       r.apiCallsTotal,
		APICallsFailed:      r.apiCallsFailed,
		LastUpdate:          r.lastUpdate,
	}
}
