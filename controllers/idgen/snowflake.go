package idgen

import (
	"os"
	"strconv"

	"fiber-lims/logger"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init creates the process-wide snowflake node. The node id comes from
// SNOWFLAKE_NODE so multiple instances can coexist behind one database.
func Init() {
	nodeID := int64(1)
	if v := os.Getenv("SNOWFLAKE_NODE"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			nodeID = parsed
		}
	}

	var err error
	node, err = snowflake.NewNode(nodeID)
	if err != nil {
		logger.Get().WithError(err).Fatal("failed to init snowflake node")
	}
}

// GenerateID returns the next unique id. Used for order numbers and
// document numbers.
func GenerateID() int64 {
	return node.Generate().Int64()
}
