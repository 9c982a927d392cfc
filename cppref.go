// Package cppref downloads C++ standard library reference pages from
// cppreference.com and assembles them into a single printable document.
// References are extracted from Markdown tables in a local corpus, fetched
// pages are cached on disk with navigation chrome stripped, and the print
// step concatenates the cached pages in recursive dictionary order of the
// symbol names.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, http/).
package cppref
