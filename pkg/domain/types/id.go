package types

import "strconv"

// RecordID identifies a historical counseling record
type RecordID int64

// String returns the decimal representation of the record ID
func (id RecordID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ClientID identifies a counseling client
type ClientID int64

// String returns the decimal representation of the client ID
func (id ClientID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
