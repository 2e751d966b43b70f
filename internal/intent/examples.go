package intent

import "case-assistant/internal/model"

// exampleCluster holds the canonical phrases for one intent and, after
// warmup, their embedding vectors in matching order.
type exampleCluster struct {
	intent  model.Intent
	phrases []string
	vectors [][]float32
}

// intentExamples are the canonical phrases per intent. Several languages per
// cluster; the embedding model is multilingual so no translation step is
// needed before comparison.
var intentExamples = []struct {
	intent  model.Intent
	phrases []string
}{
	{
		intent: model.IntentDonate,
		phrases: []string{
			"quiero donar para ayudar",
			"como puedo hacer una donacion",
			"quiero aportar dinero al caso",
			"I want to donate money",
			"how can I make a donation",
			"quero doar para ajudar",
			"puedo transferir plata para el tratamiento",
		},
	},
	{
		intent: model.IntentShare,
		phrases: []string{
			"quiero compartir este caso",
			"pasame el link para difundir",
			"puedo publicarlo en mis redes",
			"I want to share this case",
			"can I spread the word on social media",
			"quero compartilhar este caso",
		},
	},
	{
		intent: model.IntentAdopt,
		phrases: []string{
			"quiero adoptarlo",
			"puedo darle transito o adopcion",
			"me interesa adoptar al animal",
			"I would like to adopt",
			"can I foster this animal",
			"quero adotar",
		},
	},
	{
		intent: model.IntentContact,
		phrases: []string{
			"como contacto al rescatista",
			"quiero hablar con el responsable del caso",
			"pasame el contacto del guardian",
			"how do I contact the rescuer",
			"I want to talk to the person in charge",
		},
	},
	{
		intent: model.IntentHelp,
		phrases: []string{
			"como puedo ayudar",
			"en que puedo colaborar",
			"hay algo que pueda hacer por el caso",
			"how can I help",
			"what can I do to support",
			"como posso ajudar",
		},
	},
	{
		intent: model.IntentGeneral,
		phrases: []string{
			"hola como estas",
			"gracias por la informacion",
			"que es esta pagina",
			"hello there",
			"thank you very much",
		},
	},
}
