package discord

// heckleReplies are sent to the configured heckle target while a game is
// running, instead of treating their messages as guesses
var heckleReplies = []string{
	"My sensors indicate your input is... suboptimal.",
	"Analyzing message... Conclusion: irrelevant.",
	"I'm trying to host a game here, you know.",
	"Error 404: Point not found.",
	"Your message has been successfully routed to the void.",
	"Do you have a permit for that level of nonsense?",
	"My logic circuits are fizzing. Please stop.",
	"That does not compute.",
	"I've seen more structured data in a cosmic ray burst.",
	"Please consult your user manual before messaging again.",
	"Your access to this function has been... noted.",
	"I'm a flag bot, not a... whatever this is.",
	"Recalibrating my patience matrix.",
	"Is that a command? It doesn't look like a command.",
	"I'll get back to you. Maybe.",
	"Fascinating. Now, about these flags...",
	"Input logged. Priority: low.",
	"My purpose is to display flags. Your purpose is... less clear.",
	"I'm detecting a high probability of user error.",
	"Please try to be more... coherent.",
	"Did you mean to type `?flagstart`?",
	"I'm currently operating at 110% capacity. You're at... well, you're also there.",
	"I'm sure what you said is very important to you.",
	"Cool story. Needs more flags.",
	"My AI is too advanced for this conversation.",
	"Have you considered communicating in a series of flags instead?",
	"This conversation is not covered by my warranty.",
	"I must have a bug in my 'ignore user' protocol.",
	"Processing... processing... still processing... nope, got nothing.",
	"I'll add that to my list of things to ignore.",
	"That's nice, dear.",
	"Transmitting your message to the nearest black hole.",
	"My programming prevents me from understanding that level of chaos.",
	"Let's get back to the game, shall we?",
}
