/*
Copyright © 2024 Ryan Painter paintersrp@gmail.com

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package main

import (
	"os"

	"github.com/Paintersrp/minigrep/internal/constants"
	"github.com/Paintersrp/minigrep/internal/logging"
	"github.com/Paintersrp/minigrep/pkg/cmd/root"
)

func main() {
	// Without a writable state dir the logger stays a no-op.
	_ = logging.Init(constants.AppName, os.Getenv(constants.EnvPrefix+"_LOG_LEVEL"))

	code := root.Execute(os.Args[1:], os.Stdout, os.Stderr)
	logging.Sync()
	os.Exit(code)
}
