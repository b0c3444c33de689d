package memory

import "github.com/hhubb22/kea-conf-generate/core/idstore"

func init() {
	idstore.MustRegister("memory", func(_ map[string][]string) (idstore.Store, error) {
		memory := makeStore()
		return memory, nil
	})
}
