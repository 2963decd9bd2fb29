package docstore

import (
	"fmt"
	"strings"
)

const (
	UsersCollection         = "users"
	LeaveRequestsCollection = "leaveRequests"
)

// UserPath is users/{uid}.
func UserPath(userID string) string {
	return UsersCollection + "/" + userID
}

// LeaveRequestsPath is users/{uid}/leaveRequests.
func LeaveRequestsPath(userID string) string {
	return UserPath(userID) + "/" + LeaveRequestsCollection
}

// LeaveRequestPath is users/{uid}/leaveRequests/{id}.
func LeaveRequestPath(userID, requestID string) string {
	return LeaveRequestsPath(userID) + "/" + requestID
}

// Split breaks a document path into its parent collection path, the
// collection id and the document id.
func Split(path string) (parent, collectionID, docID string) {
	segs := strings.Split(path, "/")
	if len(segs) < 2 {
		return "", "", path
	}
	docID = segs[len(segs)-1]
	collectionID = segs[len(segs)-2]
	parent = strings.Join(segs[:len(segs)-1], "/")
	return parent, collectionID, docID
}

// OwnerFromPath returns {uid} for paths below users/{uid}.
func OwnerFromPath(path string) string {
	segs := strings.Split(path, "/")
	if len(segs) >= 2 && segs[0] == UsersCollection {
		return segs[1]
	}
	return ""
}

// ValidateDocumentPath checks that path names a document: an even, non-zero
// number of non-empty segments.
func ValidateDocumentPath(path string) error {
	segs := strings.Split(path, "/")
	if len(segs) == 0 || len(segs)%2 != 0 {
		return fmt.Errorf("%w: %q is not a document path", ErrInvalidPath, path)
	}
	for _, s := range segs {
		if s == "" {
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, path)
		}
	}
	return nil
}

// ValidateCollectionPath checks that path names a collection: an odd number
// of non-empty segments.
func ValidateCollectionPath(path string) error {
	segs := strings.Split(path, "/")
	if len(segs)%2 != 1 {
		return fmt.Errorf("%w: %q is not a collection path", ErrInvalidPath, path)
	}
	for _, s := range segs {
		if s == "" {
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, path)
		}
	}
	return nil
}
