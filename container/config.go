package container

import s "github.com/bnclabs/gosettings"

// Defaultsettings for SafeBst.
//
// "duplicate.reject" (bool, default: false),
//		Return ErrDuplicateKey when an insert attaches no node. By
//		default such inserts are dropped silently, like BstNode.Insert.
//
// "validate" (bool, default: false),
//		Validate the search-tree order of the whole tree after every
//		insert. Costs a full walk per insert, meant for tests.
//
func Defaultsettings() s.Settings {
	return s.Settings{
		"duplicate.reject": false,
		"validate":         false,
	}
}
