package activitystore

import (
	"fmt"

	"github.com/strideworks/stridemap/internal/contract"
	"github.com/strideworks/stridemap/schema"
)

// PrintStatus prints store statistics in a simple key-value layout.
func PrintStatus(status *schema.StoreStatus) {
	fmt.Printf("Store Backend: %s\n", status.Backend)
	fmt.Printf("Location: %s\n", status.Location)
	fmt.Printf("Activities: %d\n", status.Activities)
	if status.Activities > 0 {
		fmt.Printf("First Activity: %s\n", status.First.Format(contract.DateFormat))
		fmt.Printf("Last Activity: %s\n", status.Last.Format(contract.DateFormat))
	}
}
