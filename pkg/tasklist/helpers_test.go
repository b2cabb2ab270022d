package tasklist

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func primitiveHex(t time.Time) string {
	return primitive.NewObjectIDFromTimestamp(t).Hex()
}
