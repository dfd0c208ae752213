package dto

type UpdateCommentRequest struct {
	Text *string `json:"text" validate:"omitnil,min=1"`
}

func (r *UpdateCommentRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Text != nil {
		updates["text"] = *r.Text
	}
	return updates
}

type UpdateReactionRequest struct {
	Emoji *string `json:"emoji" validate:"omitnil,min=1"`
	Count *int    `json:"count" validate:"omitnil,min=0"`
}

func (r *UpdateReactionRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.Emoji != nil {
		updates["emoji"] = *r.Emoji
	}
	if r.Count != nil {
		updates["count"] = *r.Count
	}
	return updates
}

type UpdateShareRequest struct {
	ShareType *string `json:"share_type" validate:"omitnil,oneof=public private invite"`
	ShareLink *string `json:"share_link" validate:"omitnil,url"`
}

func (r *UpdateShareRequest) Updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if r.ShareType != nil {
		updates["share_type"] = *r.ShareType
	}
	if r.ShareLink != nil {
		updates["share_link"] = *r.ShareLink
	}
	return updates
}
