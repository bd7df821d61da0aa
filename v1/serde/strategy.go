package serde

// SubjectNameStrategy derives the subject a topic's keys or values are registered under.
type SubjectNameStrategy func(topic string, isKey bool) string

// TopicNameStrategy names subjects <topic>-key and <topic>-value.
func TopicNameStrategy(topic string, isKey bool) string {
	if isKey {
		return topic + "-key"
	}
	return topic + "-value"
}

var _ SubjectNameStrategy = TopicNameStrategy
