package models

// Gateway event kinds pushed by the platform collaborator over /ws/events
const (
	EventMemberAdd    = "member_add"
	EventMemberRemove = "member_remove"
	EventInviteCreate = "invite_create"
	EventInviteDelete = "invite_delete"
)

// GatewayEvent is one platform notification received on the event socket
type GatewayEvent struct {
	Kind      string `json:"kind"`
	SpaceID   string `json:"spaceId"`
	UserID    string `json:"userId,omitempty"`
	Code      string `json:"code,omitempty"`
	Uses      int    `json:"uses,omitempty"`
	CreatorID string `json:"creatorId,omitempty"`
}
