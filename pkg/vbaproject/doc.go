// Package vbaproject inspects and mutates a document's embedded macro
// project through an open automation session.
//
// Project access can legitimately fail, and the host cannot distinguish a
// document without macros from an ineffective trust setting or a
// password-protected project. Inspection therefore degrades inaccessible
// projects to a successful empty result carrying an advisory instead of
// guessing at a cause.
package vbaproject
