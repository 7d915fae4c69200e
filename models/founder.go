// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"strings"
)

// Column names of the founder record. The identity, version and flag columns
// are listed separately from the content fields because they never travel as
// positional wire keys.
const (
	FieldID      = "id"
	FieldVersion = "version"
	FieldNew     = "new"
	FieldDirty   = "dirty"
	FieldDeleted = "deleted"
)

// Content field names, in wire order.
const (
	GivenNames               = "given_names"
	Surnames                 = "surnames"
	PreferredFirstName       = "preferred_first_name"
	PreferredFullName        = "preferred_full_name"
	Cell                     = "cell"
	Email                    = "email"
	WebSite                  = "web_site"
	LinkedIn                 = "linked_in"
	Biography                = "biography"
	Expertise                = "expertise"
	SpouseGivenNames         = "spouse_given_names"
	SpouseSurnames           = "spouse_surnames"
	SpousePreferredFirstName = "spouse_preferred_first_name"
	SpousePreferredFullName  = "spouse_preferred_full_name"
	SpouseCell               = "spouse_cell"
	SpouseEmail              = "spouse_email"
	Status                   = "status"
	YearJoined               = "year_joined"
	HomeAddress1             = "home_address1"
	HomeAddress2             = "home_address2"
	HomeCity                 = "home_city"
	HomeState                = "home_state"
	HomePostalCode           = "home_postal_code"
	HomeCountry              = "home_country"
	OrganizationName         = "organization_name"
	JobTitle                 = "job_title"
	WorkAddress1             = "work_address1"
	WorkAddress2             = "work_address2"
	WorkCity                 = "work_city"
	WorkState                = "work_state"
	WorkPostalCode           = "work_postal_code"
	WorkCountry              = "work_country"
	MailingAddress1          = "mailing_address1"
	MailingAddress2          = "mailing_address2"
	MailingCity              = "mailing_city"
	MailingState             = "mailing_state"
	MailingPostalCode        = "mailing_postal_code"
	MailingCountry           = "mailing_country"
	MailingSameAs            = "mailing_same_as"
	ImageURL                 = "image_url"
	SpouseImageURL           = "spouse_image_url"
)

// FounderFields lists every content field of a founder record in the order
// used for positional wire keys: FounderFields[0] travels as "f1".
var FounderFields = []string{
	GivenNames, Surnames, PreferredFirstName, PreferredFullName,
	Cell, Email, WebSite, LinkedIn, Biography, Expertise,
	SpouseGivenNames, SpouseSurnames, SpousePreferredFirstName, SpousePreferredFullName,
	SpouseCell, SpouseEmail, Status, YearJoined,
	HomeAddress1, HomeAddress2, HomeCity, HomeState, HomePostalCode, HomeCountry,
	OrganizationName, JobTitle,
	WorkAddress1, WorkAddress2, WorkCity, WorkState, WorkPostalCode, WorkCountry,
	MailingAddress1, MailingAddress2, MailingCity, MailingState, MailingPostalCode, MailingCountry,
	MailingSameAs, ImageURL, SpouseImageURL,
}

// NullMarker is the literal the server and older clients use for a missing
// value. It is never stored or transmitted as content.
const NullMarker = "null"

// DeletedSentinel is the value of the deleted field in a pulled snapshot that
// marks the record as removed on the server.
const DeletedSentinel = "1"

// LocalIDPrefix prefixes placeholder identifiers of records that have not
// been created on the server yet.
const LocalIDPrefix = "new-"

// Founder is a single directory record as held by the local store.
//
// Version is owned by the server: local code only ever copies a value it
// received in a server response. New, Dirty and Deleted track the
// reconciliation state of the record.
type Founder struct {
	ID      string
	Version int64
	Fields  map[string]string

	New     bool
	Dirty   bool
	Deleted bool
}

// Field returns the value of a content field, or "" when it is unset.
func (f Founder) Field(name string) string {
	if f.Fields == nil {
		return ""
	}
	return f.Fields[name]
}

// SetField assigns a content field, allocating the map on first use.
func (f *Founder) SetField(name, value string) {
	if f.Fields == nil {
		f.Fields = make(map[string]string, len(FounderFields))
	}
	f.Fields[name] = value
}

// Values returns the content fields in wire order with null markers
// normalized to the empty string.
func (f Founder) Values() []string {
	values := make([]string, len(FounderFields))
	for i, name := range FounderFields {
		values[i] = NormalizeValue(f.Field(name))
	}
	return values
}

// Clone returns a deep copy of the record.
func (f Founder) Clone() Founder {
	c := f
	c.Fields = make(map[string]string, len(f.Fields))
	for k, v := range f.Fields {
		c.Fields[k] = v
	}
	return c
}

// IsLocal reports whether ID is a placeholder assigned on this device.
func (f Founder) IsLocal() bool {
	return strings.HasPrefix(f.ID, LocalIDPrefix)
}

// DisplayName returns the preferred full name, falling back to given names
// and surnames.
func (f Founder) DisplayName() string {
	if name := f.Field(PreferredFullName); name != "" {
		return name
	}
	return strings.TrimSpace(f.Field(GivenNames) + " " + f.Field(Surnames))
}

// PositionalKey returns the wire key of the content field at index i of
// [FounderFields].
func PositionalKey(i int) string {
	return "f" + strconv.Itoa(i+1)
}

// IsContentField reports whether name is one of [FounderFields].
func IsContentField(name string) bool {
	_, ok := fieldIndex[name]
	return ok
}

var fieldIndex = func() map[string]int {
	idx := make(map[string]int, len(FounderFields))
	for i, name := range FounderFields {
		idx[name] = i
	}
	return idx
}()

// NormalizeValue maps the null marker to the empty string.
func NormalizeValue(v string) string {
	if v == NullMarker {
		return ""
	}
	return v
}
