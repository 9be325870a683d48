package file

// FileRecord binds a file id to its stored name and owning user. It is
// valid only while a matching object exists in the object store; the
// pairing is maintained best effort, not atomically.
type FileRecord struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
	UserID   string `json:"user_id"`
}

// FileSummary is the List projection of a record.
type FileSummary struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
}

// ObjectKey returns the object-store key for a user's file. Objects live
// under "{user_id}/{file_name}".
func ObjectKey(userID, fileName string) string {
	return userID + "/" + fileName
}
