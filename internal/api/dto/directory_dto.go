package dto

import "time"

type CreateDirectoryRequest struct {
	DirectoryName string `json:"directoryName" validate:"required,safe"`
}

type RenameDirectoryRequest struct {
	NewDirectoryName string `json:"newDirectoryName" validate:"required,safe"`
}

type CreateDirectoryResponse struct {
	IDDirectory   string `json:"idDirectory"`
	DirectoryName string `json:"directoryName"`
}

type RenameDirectoryResponse struct {
	IDDirectory      string `json:"idDirectory"`
	NewDirectoryName string `json:"newDirectoryName"`
}

type DeactivateDirectoryResponse struct {
	IDDirectory string `json:"idDirectory"`
	Status      bool   `json:"status"`
}

type UpdateLastAccessResponse struct {
	IDDirectory string `json:"idDirectory"`
}

type RecentDirectory struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	LastAccessedAt time.Time `json:"lastAccessedAt"`
}

type RecentDirectoriesResponse struct {
	Directories []RecentDirectory `json:"directories"`
}
