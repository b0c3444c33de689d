package bolt

import (
	"fmt"

	"github.com/hhubb22/kea-conf-generate/core/idstore"
	"go.etcd.io/bbolt"
)

func init() {
	idstore.MustRegister("bolt", storeFactory)
}

func storeFactory(arguments map[string][]string) (idstore.Store, error) {
	file := ""

	if args, ok := arguments["__args__"]; ok {
		file = args[0]
	} else if f, ok := arguments["file"]; ok {
		if len(f) > 1 {
			return nil, fmt.Errorf("only one database file can be configured")
		}

		file = f[0]
	} else {
		return nil, fmt.Errorf("no database file configured")
	}

	db, err := bbolt.Open(file, 0o660, nil)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, path: file}

	return s, nil
}
