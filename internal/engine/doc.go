// Package engine provides the enrollment engine. It validates caller input,
// delegates signups and removals to the activity store, and reports every
// rejection as an EnrollmentError whose kind the transport layer can map to
// a response.
package engine
