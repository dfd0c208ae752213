package dto

type CreateProviderFolderRequest struct {
	FolderName string `json:"folder_name" validate:"required"`
}

type ProviderFolderResponse struct {
	Message    string `json:"message"`
	FolderPath string `json:"folder_path"`
}

// ProviderUploadRequest mirrors the UI's two-step flow: upload first, then
// create the item with the returned URL. The two calls share no transaction,
// so a failure in between leaves an orphaned remote asset.
type ProviderUploadRequest struct {
	Title  string `json:"title" validate:"required"`
	Folder string `json:"folder" validate:"required"`
	Source string `json:"source" validate:"omitempty,url"`
}

type ProviderUploadResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
}
