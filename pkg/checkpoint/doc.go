// Package checkpoint stores named 3D positions ("checkpoints") that players
// record in a game world.
//
// A Record is an immutable world name plus x, y and z coordinates. A Store keeps
// an ordered in-memory list of records and synchronizes it with a JSON file on
// demand:
//
//	{
//	  "checkpoints": [
//	    { "worldName": "world", "x": 1, "y": 2, "z": 3 }
//	  ]
//	}
//
// The store never saves on its own. Add and the Remove methods only change
// memory; Save writes the whole list back and Reload replaces memory with the
// file contents. Storage problems are returned as typed errors from
// checkpoints/pkg/errors and never leave the store unusable: a failed load
// simply yields an empty list.
package checkpoint
