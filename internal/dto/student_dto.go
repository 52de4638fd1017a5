package dto

import "time"

type RegisterStudentRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Class     string `json:"class"`
	Board     string `json:"board"`
	Language  string `json:"language"`
	Name      string `json:"name"`
}

type StudentInfo struct {
	SessionID    string    `json:"session_id"`
	Class        string    `json:"class"`
	Board        string    `json:"board"`
	Language     string    `json:"language"`
	Name         string    `json:"name"`
	RegisteredAt time.Time `json:"registered_at"`
}

type StudentInfoResponse struct {
	Success     bool         `json:"success"`
	StudentInfo *StudentInfo `json:"student_info"`
}
