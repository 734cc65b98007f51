package domain

// Role is the authorization level stored on a user's profile.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleModerator   Role = "moderator"
	RoleContributor Role = "contributor"
	RoleReader      Role = "reader"
)

// DefaultRole is assigned to every new profile.
const DefaultRole = RoleReader

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleContributor, RoleReader:
		return true
	}
	return false
}

// Label is the human-readable name shown in admin screens.
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleModerator:
		return "Moderator"
	case RoleContributor:
		return "Contributor"
	case RoleReader:
		return "Reader"
	}
	return string(r)
}

// AllRoles lists roles in descending privilege order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleModerator, RoleContributor, RoleReader}
}

// TopicStatus is the moderation state of a topic.
type TopicStatus string

const (
	TopicStatusDraft     TopicStatus = "draft"
	TopicStatusPending   TopicStatus = "pending"
	TopicStatusPublished TopicStatus = "published"
	TopicStatusRejected  TopicStatus = "rejected"
)

func (s TopicStatus) String() string { return string(s) }

func (s TopicStatus) IsValid() bool {
	switch s {
	case TopicStatusDraft, TopicStatusPending, TopicStatusPublished, TopicStatusRejected:
		return true
	}
	return false
}

// Label is the display text used on dashboards.
func (s TopicStatus) Label() string {
	switch s {
	case TopicStatusDraft:
		return "Draft"
	case TopicStatusPending:
		return "Pending Review"
	case TopicStatusPublished:
		return "Published"
	case TopicStatusRejected:
		return "Changes Required"
	}
	return string(s)
}

// Difficulty is the audience level of a topic.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// AllDifficulties lists difficulties in form order.
func AllDifficulties() []Difficulty {
	return []Difficulty{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// ProjectStatus is the progress state of a showcase project.
type ProjectStatus string

const (
	ProjectStatusInProgress ProjectStatus = "In Progress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
)

func (s ProjectStatus) String() string { return string(s) }

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

// AllProjectStatuses lists project statuses in form order.
func AllProjectStatuses() []ProjectStatus {
	return []ProjectStatus{ProjectStatusInProgress, ProjectStatusCompleted}
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeTopic    EntityType = "TOPIC"
	EntityTypeSubject  EntityType = "SUBJECT"
	EntityTypeCategory EntityType = "CATEGORY"
	EntityTypeProject  EntityType = "PROJECT"
	EntityTypeUser     EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeTopic, EntityTypeSubject, EntityTypeCategory, EntityTypeProject, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate  AuditAction = "CREATE"
	AuditActionUpdate  AuditAction = "UPDATE"
	AuditActionDelete  AuditAction = "DELETE"
	AuditActionSubmit  AuditAction = "SUBMIT"
	AuditActionApprove AuditAction = "APPROVE"
	AuditActionReject  AuditAction = "REJECT"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionSubmit, AuditActionApprove, AuditActionReject:
		return true
	}
	return false
}
