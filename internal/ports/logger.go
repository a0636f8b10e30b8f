package ports

import "github.com/bft-labs/d12pack/pkg/log"

// Logger is the structured logger used by pack assembly.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field
