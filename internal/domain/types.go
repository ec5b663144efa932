package domain

// Stage models the top-level interview session lifecycle.
type Stage string

const (
	StageWelcome          Stage = "welcome"
	StageLoadingQuestions Stage = "loading_questions"
	StageInterview        Stage = "interview"
	StageResults          Stage = "results"
)

// Phase is the per-question sub-phase within the interview stage.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhasePreparing  Phase = "preparing"
	PhaseRecording  Phase = "recording"
	PhaseProcessing Phase = "processing"
	PhaseSummary    Phase = "summary"
)

// StageReason provides a structured reason for stage/phase transitions.
type StageReason string

const (
	StageReasonSessionStarted    StageReason = "session_started"
	StageReasonNameRequired      StageReason = "name_required"
	StageReasonQuestionsReady    StageReason = "questions_ready"
	StageReasonQuestionsEmpty    StageReason = "questions_empty"
	StageReasonPreparationDone   StageReason = "preparation_done"
	StageReasonAnswerRecorded    StageReason = "answer_recorded"
	StageReasonInterviewComplete StageReason = "interview_complete"
	StageReasonResultsConfirmed  StageReason = "results_confirmed"
	StageReasonSessionReset      StageReason = "session_reset"
)

// ErrorCode identifies non-fatal backend errors surfaced to the UI.
type ErrorCode string

const (
	ErrorCodeStartup       ErrorCode = "startup"
	ErrorCodeGeneration    ErrorCode = "generation"
	ErrorCodeEvaluation    ErrorCode = "evaluation"
	ErrorCodeTranscription ErrorCode = "transcription"
	ErrorCodeSession       ErrorCode = "session"
	ErrorCodeClipboard     ErrorCode = "clipboard"
)

// Question is one generated interview question with its scoring rubric.
// Immutable once generated.
type Question struct {
	Text           string   `json:"question"`
	Category       string   `json:"category"`
	ExpectedPoints []string `json:"expected_points"`
	VoiceHints     string   `json:"voice_hints"`
}

// Evaluation scores one answer against a question's rubric.
type Evaluation struct {
	Score       int    `json:"score"`
	Rating      string `json:"rating"`
	Feedback    string `json:"feedback"`
	Matches     int    `json:"matches"`
	TotalPoints int    `json:"total_points"`
}

// Answer pairs a question with the candidate's transcript and its evaluation.
// Answers are appended in question order and immutable thereafter.
type Answer struct {
	ID         string     `json:"id"`
	Question   Question   `json:"question"`
	Transcript string     `json:"transcript"`
	Evaluation Evaluation `json:"evaluation"`
}

// Snapshot summarizes the current session state for the UI.
type Snapshot struct {
	Stage           Stage  `json:"stage"`
	Phase           Phase  `json:"phase"`
	CandidateName   string `json:"candidateName"`
	ExperienceYears int    `json:"experienceYears"`
	QuestionIndex   int    `json:"questionIndex"`
	QuestionCount   int    `json:"questionCount"`
	LastTranscript  string `json:"lastTranscript,omitempty"`
}

// CategoryScore is the mean score for one question category.
type CategoryScore struct {
	Category string  `json:"category"`
	Mean     float64 `json:"mean"`
}

// Report aggregates a finished interview for the results view.
type Report struct {
	SessionID      string          `json:"sessionId"`
	CandidateName  string          `json:"candidateName"`
	OverallScore   float64         `json:"overallScore"`
	SkillLevel     string          `json:"skillLevel"`
	Recommendation string          `json:"recommendation"`
	QuestionsAsked int             `json:"questionsAsked"`
	CategoryScores []CategoryScore `json:"categoryScores"`
	Answers        []Answer        `json:"answers"`
}
