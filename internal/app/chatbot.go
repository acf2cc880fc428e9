package app

import (
	"strings"

	"justice-play/internal/domain"
)

// ChatRule maps a keyword to a canned reply.
type ChatRule struct {
	Keyword string
	Reply   string
}

// DefaultChatReply is returned when no rule matches.
const DefaultChatReply = "I'm not sure about that. You could ask me about education, play, privacy, bullying, healthcare, expressing opinions, or discrimination. Or type 'help' to see what I can help with!"

// Chatbot answers rights questions from an ordered rule list; the first rule whose keyword
// occurs in the message wins.
type Chatbot struct {
	rules    []ChatRule
	fallback string
}

func NewChatbot(rules []ChatRule, fallback string) *Chatbot {
	normalized := make([]ChatRule, 0, len(rules))
	for _, r := range rules {
		normalized = append(normalized, ChatRule{Keyword: strings.ToLower(r.Keyword), Reply: r.Reply})
	}
	return &Chatbot{rules: normalized, fallback: fallback}
}

// NewDefaultChatbot returns the built-in rights assistant.
func NewDefaultChatbot() *Chatbot {
	return NewChatbot(DefaultChatRules(), DefaultChatReply)
}

// Reply matches case-insensitively.
func (b *Chatbot) Reply(message string) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return "", domain.ErrEmptyMessage
	}
	for _, rule := range b.rules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Reply, nil
		}
	}
	return b.fallback, nil
}

// DefaultChatRules are checked in this order.
func DefaultChatRules() []ChatRule {
	return []ChatRule{
		{"education", "Education is a fundamental right of every child. According to Article 28 of the UN Convention on the Rights of the Child, all children have the right to education, and primary education should be free for all."},
		{"play", "Playing and recreation are important rights! Article 31 of the UN Convention says that every child has the right to rest, leisure, play, and to take part in cultural and artistic activities."},
		{"privacy", "Privacy is an important right. Article 16 of the UN Convention protects children from arbitrary interference with their privacy, family, home or correspondence."},
		{"bullying", "Everyone has the right to be safe from harm, including bullying. If you're experiencing bullying, it's important to tell a trusted adult like a parent or teacher."},
		{"healthcare", "Healthcare is a right for all children. Article 24 of the UN Convention states that children have the right to good quality health care, clean water, nutritious food, and a clean environment."},
		{"opinion", "Your opinion matters! According to Article 12, children have the right to express their views freely in all matters affecting them, and these views should be given due weight."},
		{"discrimination", "All children have rights, regardless of race, color, gender, language, religion, opinions, origins, wealth, disability status, or any other status. This is protected by Article 2 of the UN Convention."},
		{"help", "I can answer questions about children's rights, such as education, play, privacy, safety, healthcare, expressing opinions, and protection from discrimination. What would you like to know about?"},
		{"rights", "The UN Convention on the Rights of the Child lists all the rights that children have. These include the right to survival, to develop to the fullest, to protection from harmful influences, abuse and exploitation, and to participate fully in family, cultural and social life."},
	}
}
