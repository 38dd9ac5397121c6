package domain

// Role distinguishes care recipients from caregivers.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

const UnknownUserName = "Unknown User"

// User is a read-only directory entry.
// PhysicianID is only meaningful for patients, PatientIDs only for doctors.
type User struct {
	ID           string   `validate:"required,max=128" yaml:"id"`
	Name         string   `validate:"required" yaml:"name"`
	Username     string   `validate:"required" yaml:"username"`
	Email        string   `validate:"omitempty,email" yaml:"email"`
	Role         Role     `validate:"required,oneof=patient doctor admin" yaml:"role"`
	PhysicianID  string   `yaml:"physician_id"`
	PatientIDs   []string `yaml:"patient_ids"`
	PasswordHash string   `yaml:"-"`
}

func (u User) Validate() error {
	return validate.Struct(u)
}

// Directory is an immutable snapshot of users and care relationships.
type Directory struct {
	users map[string]User
	order []string
}

func NewDirectory(users ...User) Directory {
	d := Directory{users: make(map[string]User, len(users))}
	for _, u := range users {
		if _, ok := d.users[u.ID]; !ok {
			d.order = append(d.order, u.ID)
		}
		d.users[u.ID] = u
	}
	return d
}

func (d Directory) Get(id string) (User, bool) {
	u, ok := d.users[id]
	return u, ok
}

// Users returns every entry in insertion order.
func (d Directory) Users() []User {
	out := make([]User, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.users[id])
	}
	return out
}

// NameOf returns the display name of id, or UnknownUserName.
func (d Directory) NameOf(id string) string {
	if u, ok := d.users[id]; ok {
		return u.Name
	}
	return UnknownUserName
}
