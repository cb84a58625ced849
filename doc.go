// Package seaweed provides the shared data model for a SeaweedFS-style
// blob-storage cluster client: file ids, volume server locations, replica
// placement and time-to-live specifications, and server endpoint addresses.
//
// # Overview
//
// A SeaweedFS-style cluster has two kinds of servers. The master (directory)
// server allocates file ids and knows which volume servers hold which volume
// ids. The volume servers hold the actual object bytes. A client first asks
// the master for a file id and a location, then talks to the volume server
// directly using that file id.
//
// # Architecture
//
// The module is split along those lines:
//
//	┌──────────────────────────────────┐
//	│            caller               │
//	└──────┬─────────────────┬────────┘
//	       │                 │
//	┌──────▼──────┐   ┌──────▼──────┐
//	│   master    │   │   volume    │
//	│ Assign      │   │ Store       │
//	│ Lookup      │   │ Fetch       │
//	└──────┬──────┘   │ Delete      │
//	       │          └──────┬──────┘
//	       │                 │
//	┌──────▼─────────────────▼────────┐
//	│       seaweed (this package)    │
//	│   Fid, Location, Addr,          │
//	│   Replication, TTL              │
//	└─────────────────────────────────┘
//
// Package master implements the directory client (assign, lookup). Package
// volume implements the object store client (store, fetch, delete). Both
// depend only on the types defined here; a caller chains them together.
//
// # File Ids
//
// A file id is the globally unique handle of a stored object. Its canonical
// text form is "<volumeId>,<key>" with an optional "_<generation>" suffix,
// for example "3,01637037d6" or "3,5442434343_2". Parsing and formatting
// round-trip losslessly, including the presence or absence of the generation
// segment.
//
// # Concurrency
//
// Every type in this package is an immutable value. Clients built on top of
// them hold only configuration (host and port), never connection state, and
// are safe for concurrent use without synchronization.
package seaweed
