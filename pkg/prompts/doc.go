// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

/*
Package prompts provides user interaction primitives following UNIX conventions.

Non-interactive mode is enabled when ANY of these is true:

  - --non-interactive is passed
  - CROWDFUND_NON_INTERACTIVE=1/true/yes/on environment variable
  - CI=1/true environment variable (GitHub Actions, GitLab CI, etc.)
  - stdin is not a TTY (piped/redirected/scripted)

Values are resolved in this order:

 1. Flags (--private-key)
 2. Environment variables (CROWDFUND_PRIVATE_KEY)
 3. Config file (crowdfund.yaml)
 4. Prompts (only if interactive)

In non-interactive mode every Capture* call fails with ErrNonInteractive so
that scripts learn about a missing flag instead of hanging on stdin.
*/
package prompts
