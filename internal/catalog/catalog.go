package catalog

// Category labels for the curated challenge list
type Category string

const (
	SocialInteraction Category = "social_interaction"
	PhoneCalls        Category = "phone_calls"
	PublicSpeaking    Category = "public_speaking"
	SelfAdvocacy      Category = "self_advocacy"
	DigitalSocial     Category = "digital_social"
	Workplace         Category = "workplace"
)

// Task is one entry of the flattened catalog: the challenge text plus the
// category it was declared under.
type Task struct {
	Title    string   `json:"task"`
	Category Category `json:"category"`
}

// group keeps tasks in declaration order under one category.
type group struct {
	category Category
	tasks    []string
}

// The curated challenge catalog. The flattened order (categories in this
// declaration order, tasks in their declaration order) is what the daily
// selector indexes into, so entries must never be reordered or removed,
// only appended. Reordering silently reassigns everyone's past daily tasks.
var groups = []group{
	{SocialInteraction, []string{
		"Make eye contact and smile at a cashier today",
		"Ask someone 'How's your day going?' and listen to their response",
		"Compliment someone on their outfit, hairstyle, or something they're wearing",
		"Hold the door open for someone and make brief small talk",
		"Thank someone for their service (waiter, cashier, etc.) by name",
		"Ask for directions, even if you know the way",
		"Make a comment about the weather to someone waiting in line",
		"Wave hello to a neighbor",
		"Ask a coworker about their weekend plans",
		"Share a positive observation about your surroundings with someone nearby",
	}},
	{PhoneCalls, []string{
		"Call a restaurant to ask about their hours",
		"Make a dentist or doctor appointment over the phone",
		"Call a store to check if they have an item in stock",
		"Order takeout by phone instead of using an app",
		"Call a friend or family member just to say hello",
		"Ask a business about their services over the phone",
		"Call to confirm an appointment",
		"Phone a local business to ask about their location",
	}},
	{PublicSpeaking, []string{
		"Ask a question in a group setting (meeting, class, etc.)",
		"Share your opinion when someone asks the group a question",
		"Introduce yourself to someone new in a group setting",
		"Volunteer to read something aloud if the opportunity arises",
		"Make a toast or brief speech at dinner",
		"Ask for help from a store employee",
		"Participate in a group discussion by adding one comment",
	}},
	{SelfAdvocacy, []string{
		"Send back food that isn't what you ordered",
		"Ask for a discount or deal politely",
		"Return an item to a store",
		"Ask for help when you're lost or confused",
		"Speak up when someone cuts in line",
		"Ask for a seat on public transportation if you need one",
		"Request a different table at a restaurant",
		"Ask to speak to a manager about a positive experience",
	}},
	{DigitalSocial, []string{
		"Comment on a friend's social media post with something meaningful",
		"Share something positive on your own social media",
		"Join an online community discussion",
		"Send a message to reconnect with an old friend",
		"Post a question in a community group",
		"Leave a positive review for a business you enjoyed",
		"Share an article or meme that made you laugh",
		"Respond to someone's story or post with encouragement",
	}},
	{Workplace, []string{
		"Suggest an idea in a meeting",
		"Ask a coworker to grab coffee or lunch",
		"Introduce yourself to someone new at work",
		"Volunteer for a project or task",
		"Ask for clarification on something you don't understand",
		"Compliment a colleague on their work",
		"Start a casual conversation in the break room",
		"Offer to help someone with a task",
	}},
}

// flattened is built once at init and never mutated afterwards.
var flattened []Task

func init() {
	for _, g := range groups {
		for _, title := range g.tasks {
			flattened = append(flattened, Task{Title: title, Category: g.category})
		}
	}
}

// All returns the flattened catalog in its frozen order. Callers must treat
// the slice as read-only.
func All() []Task {
	return flattened
}

// Len returns the number of tasks in the flattened catalog.
func Len() int {
	return len(flattened)
}

// Categories returns the category labels in declaration order.
func Categories() []Category {
	out := make([]Category, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.category)
	}
	return out
}
