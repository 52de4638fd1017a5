package demo

// Canned answer texts. Wording is free-form; the topic → age-band routing in
// responder.go is the behavioral contract.

var aiAnswers = map[AgeBand]string{
	BandPrimary: `AI stands for Artificial Intelligence. Think of it as teaching a computer to be smart, a little like how you learn new things at school!

When you show a computer lots and lots of pictures of cats, it slowly learns what a cat looks like. After that, it can spot a cat in a brand new picture all by itself. That is AI!

You already use AI every day: when a phone understands what you say, or when a video app guesses which cartoon you want to watch next. Computers are not magic, they just practice a lot, like you practice writing letters.`,

	BandSecondary: `Artificial Intelligence (AI) is the field of computer science that builds systems able to perform tasks that normally need human intelligence, such as recognizing speech, translating languages, or playing chess.

Most modern AI is based on Machine Learning: instead of programming every rule by hand, we feed the computer thousands of examples and let it find patterns on its own. For example, a spam filter learns from many labelled emails which words and patterns usually mean "spam".

A popular technique is the neural network, loosely inspired by how neurons in the brain pass signals to each other. Each "neuron" does a small calculation, and millions of them together can recognize faces, drive cars, or answer questions like this one.`,

	BandSenior: `Artificial Intelligence is the study of computational systems that perform tasks associated with human cognition: perception, reasoning, language and decision-making. The dominant paradigm today is Machine Learning, where a model's parameters are fitted to data rather than hand-coded.

In supervised learning, a model f(x; w) is trained on labelled pairs (x, y) by minimizing a loss function, typically via gradient descent. Deep learning stacks many layers of such parameterized functions, which lets the network learn hierarchical representations - edges, then shapes, then objects in an image classifier, for instance.

Beyond supervised learning you will meet unsupervised learning (clustering, dimensionality reduction), reinforcement learning (agents maximizing reward through trial and error), and large language models, which are trained to predict the next token over enormous text corpora. Understanding linear algebra, probability and calculus will take you a long way in this field.`,
}

var photosynthesisAnswers = map[AgeBand]string{
	BandPrimary: `Photosynthesis is how plants make their own food. Isn't that cool? They don't need a kitchen!

A plant takes three things: sunlight from the sun, water from the soil through its roots, and a gas called carbon dioxide from the air through tiny holes in its leaves.

Inside the green leaves there is a special helper called chlorophyll. It mixes everything together using sunlight and makes sugar for the plant to eat. And here is the best part: the plant gives out fresh oxygen, which is the air we breathe!`,

	BandSecondary: `Photosynthesis is the process by which green plants convert light energy into chemical energy stored as glucose. It happens mainly in the leaves, inside organelles called chloroplasts that contain the green pigment chlorophyll.

The overall equation is: 6CO2 + 6H2O + light energy -> C6H12O6 + 6O2. Carbon dioxide enters through the stomata, water arrives through the xylem from the roots, and chlorophyll absorbs light (mostly red and blue wavelengths, reflecting green - which is why leaves look green).

The process has two stages: the light-dependent reactions, which capture light energy and split water to release oxygen, and the light-independent reactions (Calvin cycle), which use that energy to build glucose from carbon dioxide. Photosynthesis is the foundation of nearly every food chain on Earth.`,

	BandSenior: `Photosynthesis converts light energy into chemical energy in two coupled stages within the chloroplast.

Light-dependent reactions (thylakoid membrane): photons excite chlorophyll in Photosystem II, driving photolysis of water (2H2O -> 4H+ + 4e- + O2). Electrons travel down the electron transport chain through the cytochrome b6f complex to Photosystem I, pumping protons into the thylakoid lumen; the resulting proton-motive force drives ATP synthase (photophosphorylation), while NADP+ is reduced to NADPH.

Light-independent reactions (stroma, Calvin cycle): RuBisCO fixes CO2 onto ribulose-1,5-bisphosphate, producing 3-phosphoglycerate, which is reduced using ATP and NADPH to glyceraldehyde-3-phosphate; most G3P regenerates RuBP, the rest is exported to synthesize glucose. For exams, remember the limiting factors - light intensity, CO2 concentration and temperature - and how C4 and CAM plants work around photorespiration.`,
}

var mathAnswers = map[AgeBand]string{
	BandPrimary: `Mathematics is like a puzzle game with numbers! Every problem is a little riddle waiting for you to solve it.

When you add, you put things together: 3 candies plus 2 candies makes 5 candies. When you subtract, you take things away: 5 candies minus 2 candies leaves 3 candies for you.

The secret to being great at maths is practice, just like riding a bicycle. Try counting the things around you - stairs, spoons, birds - and maths will become your favourite game!`,

	BandSecondary: `Mathematics at your level branches into several connected areas, and seeing the connections makes each one easier.

Algebra lets you work with unknowns: in 2x + 3 = 11, you isolate x by doing the same operation on both sides (subtract 3, divide by 2, so x = 4). Geometry studies shapes, angles and areas - the angle sum of a triangle is always 180 degrees, and the Pythagorean theorem (a^2 + b^2 = c^2) connects the sides of a right triangle.

A useful habit: after solving any problem, substitute your answer back into the original statement to verify it. Maths rewards checking your own work more than any other subject.`,

	BandSenior: `At the senior level, mathematics revolves around a few powerful ideas that appear everywhere in science and engineering.

Calculus studies change: the derivative measures an instantaneous rate of change (the slope of a curve at a point), while the integral accumulates quantities (the area under a curve). The Fundamental Theorem of Calculus ties them together as inverse operations.

Alongside calculus you will work with linear algebra (vectors, matrices, systems of equations), probability and statistics (distributions, expectation, hypothesis testing) and coordinate geometry. For board examinations, focus on mastering standard derivatives and integrals, matrix operations, and the properties of conic sections - and always write out intermediate steps, since method marks matter.`,
}

var scienceAnswers = map[AgeBand]string{
	BandPrimary: `Science is all about asking "why?" and "how?" about the world around you - and you are already a scientist every time you ask those questions!

Why is the sky blue? How does a seed become a big tree? Where does rain come from? Scientists look carefully, try little experiments, and find the answers step by step.

Here is a fun experiment: put a bean seed on wet cotton near a window and watch it every day. In a few days you will see a tiny root and a little green shoot. That is science happening right in front of you!`,

	BandSecondary: `Science is a method for understanding the natural world through observation, hypothesis and experiment. It is usually divided into three main branches at your level.

Physics studies matter, energy and motion - forces, electricity, light and sound. Chemistry studies what things are made of and how substances react - atoms, molecules, acids and bases. Biology studies living things - cells, body systems, plants and ecosystems.

The heart of all three is the scientific method: observe something, form a testable hypothesis, design an experiment with controlled variables, record the results honestly, and draw conclusions. A result that disproves your hypothesis is still good science - that is how knowledge grows.`,

	BandSenior: `At the senior level the sciences deepen into quantitative, mechanism-level understanding.

In physics you move from descriptions to models: Newtonian mechanics, thermodynamics, electromagnetism and an introduction to modern physics (relativity and quantum ideas). In chemistry, the periodic table's structure follows from electron configurations, and reaction behaviour follows from thermodynamics (will it happen?) and kinetics (how fast?). In biology, molecular machinery takes the stage: DNA replication, transcription and translation, and the biochemistry of respiration and photosynthesis.

Two habits will serve you well: always track units through a calculation (dimensional analysis catches most errors), and learn the why behind each formula instead of memorizing it - examiners increasingly reward reasoning over recall.`,
}

const genericAnswer = `That's a wonderful question, and asking it is the first step of real learning!

Every expert you admire started exactly where you are now: curious, and brave enough to ask. Break the question into smaller parts, look at each one closely, and don't be afraid to say "I don't know yet" - the "yet" is what matters.

Try discussing the question with your teacher or classmates, check your textbook's index for related topics, and come back anytime. Keep that curiosity burning - it is your superpower!`
