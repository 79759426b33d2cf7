package engines

import (
	"github.com/aviary-ai/aviary/components/vectordb/engines/chromem"
	"github.com/aviary-ai/aviary/components/vectordb/engines/memory"
	"github.com/aviary-ai/aviary/components/vectordb/engines/milvus"
)

var (
	FromChromem = chromem.New
	FromMemory  = memory.New
	FromMilvus  = milvus.New
)
