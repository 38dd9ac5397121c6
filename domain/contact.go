package domain

import (
	"slices"

	"github.com/samber/lo"
)

// ResolveContacts returns the users that user may exchange messages with.
//
// A patient can reach its assigned physician plus every doctor listing it as a patient.
// A doctor can reach each of its patients. Administrators have no contacts.
// Entries missing from the directory are ignored. Nothing is cached.
func ResolveContacts(directory Directory, user User) []User {
	switch user.Role {
	case RolePatient:
		var contacts []User
		if physician, ok := directory.Get(user.PhysicianID); ok && physician.ID != user.ID {
			contacts = append(contacts, physician)
		}
		for _, doctor := range directory.Users() {
			if doctor.Role != RoleDoctor || !slices.Contains(doctor.PatientIDs, user.ID) {
				continue
			}
			contacts = append(contacts, doctor)
		}
		return lo.UniqBy(contacts, func(u User) string { return u.ID })
	case RoleDoctor:
		patients := lo.FilterMap(user.PatientIDs, func(id string, _ int) (User, bool) {
			return directory.Get(id)
		})
		return lo.UniqBy(patients, func(u User) string { return u.ID })
	default:
		return nil
	}
}

// CanMessage reports whether sender may address receiver under ResolveContacts.
func CanMessage(directory Directory, senderID, receiverID string) bool {
	sender, ok := directory.Get(senderID)
	if !ok {
		return false
	}
	return lo.ContainsBy(ResolveContacts(directory, sender), func(u User) bool {
		return u.ID == receiverID
	})
}
