package notifications

import "time"

// Job письмо в очереди
type Job struct {
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

// failedJob письмо, которое не удалось отправить за MaxTries попыток
type failedJob struct {
	Job    Job       `json:"job"`
	Error  string    `json:"error"`
	Failed time.Time `json:"failed"`
}
