package domain

// SendMessageCommand is one outbound message from the portal.
type SendMessageCommand struct {
	TenantID    string `validate:"required"`
	From        string `validate:"required"`
	Destination string `validate:"required,notblank"`
	Body        string `validate:"required,notblank"`
	SenderName  string
}

type AddColleagueCommand struct {
	TenantID  string `validate:"required"`
	Address   string `validate:"required,notblank"`
	Group     string `validate:"required,notblank"`
	Password  string `validate:"required"`
	Role      Role   `validate:"required,oneof=Admin Standard"`
	FirstName string
	LastName  string
}

type EditColleagueCommand struct {
	TenantID string `validate:"required"`
	Address  string `validate:"required,notblank"`
	Group    string `validate:"required,notblank"`
	Role     Role   `validate:"required,oneof=Admin Standard"`
}

type RenameGroupCommand struct {
	TenantID string `validate:"required"`
	OldName  string `validate:"required,notblank"`
	NewName  string `validate:"required,notblank"`
}
