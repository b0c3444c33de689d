package drivers

import (
	// import all supported drivers
	_ "github.com/hhubb22/kea-conf-generate/core/idstore/drivers/bolt"
	_ "github.com/hhubb22/kea-conf-generate/core/idstore/drivers/memory"
)
