// Application server is the main server for the quiz API
package main

import (
	"context"
	"os"

	"github.com/starquake/quizcrud/cmd/server/app"
	"github.com/starquake/quizcrud/internal/must"
)

func main() {
	ctx := context.Background()
	must.OK(app.Run(ctx, os.Getenv, os.Stdout, nil))
}
