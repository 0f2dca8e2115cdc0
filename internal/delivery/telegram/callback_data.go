package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionQuiz = "quiz"
)

// Quiz sub-actions.
const (
	quizStart  = "start"
	quizAnswer = "answer"
	quizNext   = "next"
	quizRetry  = "retry"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// quizCallback is a decoded quiz action bound to a session.
type quizCallback struct {
	Sub         string
	SessionID   string
	QuestionNum int
	OptionIndex int
}

// parseQuizCallback validates the parameters of a quiz callback.
func parseQuizCallback(cd callbackData) (quizCallback, bool) {
	if cd.Action != actionQuiz || len(cd.Params) == 0 {
		return quizCallback{}, false
	}

	qc := quizCallback{Sub: cd.Params[0]}
	switch qc.Sub {
	case quizStart:
		return qc, len(cd.Params) == 1
	case quizNext, quizRetry:
		if len(cd.Params) != 2 {
			return quizCallback{}, false
		}
		qc.SessionID = cd.Params[1]
		return qc, true
	case quizAnswer:
		if len(cd.Params) != 4 {
			return quizCallback{}, false
		}
		q, err1 := strconv.Atoi(cd.Params[2])
		o, err2 := strconv.Atoi(cd.Params[3])
		if err1 != nil || err2 != nil || q < 0 || o < 0 {
			return quizCallback{}, false
		}
		qc.SessionID = cd.Params[1]
		qc.QuestionNum = q
		qc.OptionIndex = o
		return qc, true
	default:
		return quizCallback{}, false
	}
}

// buildQuizStartCallback builds callback data for starting a quiz session.
func buildQuizStartCallback() string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{quizStart},
	}.encode()
}

// buildQuizAnswerCallback builds callback data for answering a quiz question.
func buildQuizAnswerCallback(sessionID string, questionNum, optionIndex int) string {
	return callbackData{
		Action: actionQuiz,
		Params: []string{
			quizAnswer,
			sessionID,
			strconv.Itoa(questionNum),
			strconv.Itoa(optionIndex),
		},
	}.encode()
}

func buildQuizNextCallback(sessionID string) string {
	return callbackData{Action: actionQuiz, Params: []string{quizNext, sessionID}}.encode()
}

func buildQuizRetryCallback(sessionID string) string {
	return callbackData{Action: actionQuiz, Params: []string{quizRetry, sessionID}}.encode()
}
